// Public domain.

// Package fitswcs resolves the world coordinate system keywords of a
// FITS image header.
//
// Resolution covers three independent results: the celestial
// reference frame (package frame), a projection descriptor with its
// parameters (package proj), and an optional SIP distortion model
// (package sip).  The package parses and resolves keywords only; the
// pixel/sky transformation math consuming the descriptors is left to
// a projection library.
//
// All resolvers are pure functions over the parsed header snapshot.
// They share no state and may be run concurrently by a caller if
// desired.
package fitswcs

import (
	"math"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/fitswcs/frame"
	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/fitswcs/proj"
	"github.com/soniakeys/fitswcs/sip"
)

// WCS is the resolved world coordinate system of one image.
type WCS struct {
	Frame frame.System
	Proj  proj.Projection
	Sip   *sip.Model // nil when the header carries no SIP suffix
}

// Resolve parses raw header text and resolves the reference frame,
// the projection and the optional SIP distortion.
func Resolve(headerText string) (*WCS, error) {
	h, err := header.Parse(headerText)
	if err != nil {
		return nil, err
	}
	return ResolveHeader(h)
}

// ResolveHeader resolves an already parsed header.
//
// SIP resolution is attempted only when CTYPE1 carries the -SIP
// suffix; the reference pixel then comes from the CRPIX keywords,
// defaulting to the origin.
func ResolveHeader(h *header.Header) (*WCS, error) {
	sys, err := frame.Parse(h)
	if err != nil {
		return nil, err
	}
	ctype1, err := h.CType(1)
	if err != nil {
		return nil, err
	}
	p, err := proj.Parse(h, ProjCode(ctype1))
	if err != nil {
		return nil, err
	}
	w := &WCS{Frame: sys, Proj: p}
	if strings.HasSuffix(ctype1, "-SIP") {
		crpix1 := h.FloatOr("CRPIX1", 0)
		crpix2 := h.FloatOr("CRPIX2", 0)
		if w.Sip, err = sip.Parse(h, crpix1, crpix2); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// ProjCode extracts the projection code from a CTYPE keyword value:
// the segment after the last separator, once any -SIP suffix is
// removed.  "RA---TAN-SIP" gives "TAN".
func ProjCode(ctype string) string {
	s := strings.TrimSuffix(ctype, "-SIP")
	if i := strings.LastIndex(s, "-"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// Dist returns the angular distance between two sky positions.
func Dist(a, b proj.Center) unit.Angle {
	u := cart(a)
	v := cart(b)
	return unit.Angle(math.Acos(u.Dot(&v)))
}

// cart converts a sky position to a unit vector.
func cart(c proj.Center) coord.Cart {
	sb, cb := math.Sincos(c.Lat.Rad())
	sl, cl := math.Sincos(c.Lon.Rad())
	return coord.Cart{X: cb * cl, Y: cb * sl, Z: sb}
}
