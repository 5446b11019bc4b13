// Public domain.

// Package header parses FITS header cards into a read-only keyword
// snapshot.
//
// Only the cards of interest to WCS resolution are kept: the axis
// lengths NAXIS1 and NAXIS2, the coordinate types CTYPE1 and CTYPE2,
// the reference system RADESYS, and any card with a numeric value.
// String valued cards other than CTYPE and RADESYS are quietly
// dropped, as are comment and history cards.
package header

import (
	"fmt"
	"strconv"
	"strings"
)

// CardLen is the fixed length of a FITS header card image.
const CardLen = 80

// Header is a snapshot of the WCS keywords of one FITS header block.
// It is read-only after Parse.
type Header struct {
	naxis1, naxis2 uint64 // 0 means absent
	ctype1, ctype2 string
	radesys        string
	cards          map[string]float64
}

// Parse splits raw header text into 80 character card images and
// collects WCS keywords into a Header.
//
// A trailing fragment shorter than a full card is ignored.  Cards
// without the "= " value indicator (COMMENT, HISTORY, END, blank) are
// skipped.  NAXIS1 and NAXIS2 must parse as unsigned integers; a
// parse failure there is fatal.  Any other card that fails to parse
// as a float is quietly dropped.  If a keyword repeats, the last card
// wins.
func Parse(s string) (*Header, error) {
	h := &Header{cards: make(map[string]float64)}
	for off := 0; off+CardLen <= len(s); off += CardLen {
		card := s[off : off+CardLen]
		eq := strings.Index(card, "= ")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(card[:eq])
		val := uncommented(card[eq+2:])
		switch key {
		case "NAXIS1":
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return nil, &ParseError{Key: key, Value: val}
			}
			h.naxis1 = n
		case "NAXIS2":
			n, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return nil, &ParseError{Key: key, Value: val}
			}
			h.naxis2 = n
		case "CTYPE1":
			h.ctype1 = unquote(val)
		case "CTYPE2":
			h.ctype2 = unquote(val)
		case "RADESYS":
			h.radesys = unquote(val)
		default:
			if v, err := strconv.ParseFloat(val, 64); err == nil {
				h.cards[key] = v
			}
		}
	}
	return h, nil
}

// uncommented strips an inline comment, everything from the first
// unquoted '/' on, and trims what remains.
func uncommented(v string) string {
	quoted := false
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\'':
			quoted = !quoted
		case '/':
			if !quoted {
				return strings.TrimSpace(v[:i])
			}
		}
	}
	return strings.TrimSpace(v)
}

func unquote(v string) string {
	return strings.TrimSpace(strings.ReplaceAll(v, "'", ""))
}

// Naxis returns the pixel count of 1 based axis n.  Ok is false if
// the axis length is absent from the header.
func (h *Header) Naxis(n int) (int, bool) {
	var v uint64
	switch n {
	case 1:
		v = h.naxis1
	case 2:
		v = h.naxis2
	}
	return int(v), v > 0
}

// CType returns the coordinate type keyword value of 1 based axis n.
func (h *Header) CType(n int) (string, error) {
	var v string
	switch n {
	case 1:
		v = h.ctype1
	case 2:
		v = h.ctype2
	}
	if v == "" {
		return "", &MissingKeyword{"CTYPE"}
	}
	return v, nil
}

// RadeSys returns the RADESYS keyword value.  Ok is false if the card
// is absent.
func (h *Header) RadeSys() (string, bool) {
	return h.radesys, h.radesys != ""
}

// Float returns the value of a numeric card.  The key is trimmed and
// upper cased before lookup, so callers need not reproduce the fixed
// width padding of the card image.
func (h *Header) Float(key string) (float64, bool) {
	v, ok := h.cards[strings.ToUpper(strings.TrimSpace(key))]
	return v, ok
}

// FloatOr returns the value of a numeric card, or def if the card is
// absent.
func (h *Header) FloatOr(key string, def float64) float64 {
	if v, ok := h.Float(key); ok {
		return v
	}
	return def
}

// Int returns the value of a numeric card truncated to int.  Ok is
// false if the card is absent.
func (h *Header) Int(key string) (int, bool) {
	v, ok := h.Float(key)
	return int(v), ok
}

// MissingKeyword is the error for a structurally required keyword
// absent from the header.
type MissingKeyword struct {
	Keyword string
}

func (e *MissingKeyword) Error() string {
	return "mandatory WCS keyword missing: " + e.Keyword
}

// ParseError is the error for a card that must be numeric but is not.
type ParseError struct {
	Key, Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("header card %s: invalid numeric value %q",
		e.Key, e.Value)
}
