// Public domain.

// Package frame resolves the celestial reference frame of a FITS WCS
// header.
package frame

import (
	"fmt"

	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/meeus/v3/base"
)

// RefSys identifies a reference system from the fixed RADESYS table.
type RefSys int

const (
	// International Celestial Reference System
	ICRS RefSys = iota
	// mean place, new (IAU 1984) system
	FK5
	// mean place, old (Bessell-Newcomb) system
	FK4
	// mean place, old system but without e-terms
	FK4NoE
	// geocentric apparent place, IAU 1984 system
	GAPPT
)

var refSysTable = map[string]RefSys{
	"ICRS":     ICRS,
	"FK5":      FK5,
	"FK4":      FK4,
	"FK4-NO-E": FK4NoE,
	"GAPPT":    GAPPT,
}

func (r RefSys) String() string {
	switch r {
	case ICRS:
		return "ICRS"
	case FK5:
		return "FK5"
	case FK4:
		return "FK4"
	case FK4NoE:
		return "FK4-NO-E"
	case GAPPT:
		return "GAPPT"
	}
	return "?"
}

// ParseRefSys maps the RADESYS keyword of a header through the fixed
// RADESYS table.
func ParseRefSys(h *header.Header) (RefSys, error) {
	s, ok := h.RadeSys()
	if !ok {
		return 0, &header.MissingKeyword{Keyword: "RADESYS"}
	}
	r, ok := refSysTable[s]
	if !ok {
		return 0, &UnrecognizedRefSys{s}
	}
	return r, nil
}

// Kind selects among the supported celestial frames.
type Kind int

const (
	Equatorial Kind = iota
	Galactic
	Ecliptic
	HelioEcliptic
	Supergalactic
	Custom
)

func (k Kind) String() string {
	switch k {
	case Equatorial:
		return "equatorial"
	case Galactic:
		return "galactic"
	case Ecliptic:
		return "ecliptic"
	case HelioEcliptic:
		return "helioecliptic"
	case Supergalactic:
		return "supergalactic"
	case Custom:
		return "custom"
	}
	return "?"
}

// System is the resolved celestial reference frame of an image.
// RefSys and Equinox are meaningful only when Kind is Custom.
type System struct {
	Kind    Kind
	RefSys  RefSys
	Equinox float64 // epoch in years
}

func (s System) String() string {
	if s.Kind == Custom {
		return fmt.Sprintf("%s equinox %g", s.RefSys, s.Equinox)
	}
	return s.Kind.String()
}

// Parse resolves the reference frame of a header.
//
// A recognized RADESYS card together with an EQUINOX card gives a
// Custom system, and takes precedence unconditionally.  Anything
// short of that pair, including an unrecognized RADESYS value, falls
// through to a heuristic on the first letter of CTYPE1.  Parse fails
// only if the fallback is needed and CTYPE1 is absent.
func Parse(h *header.Header) (System, error) {
	r, rerr := ParseRefSys(h)
	eq, ok := h.Float("EQUINOX")
	if rerr == nil && ok {
		return System{Kind: Custom, RefSys: r, Equinox: eq}, nil
	}
	ctype1, err := h.CType(1)
	if err != nil {
		return System{}, err
	}
	switch ctype1[0] {
	case 'G':
		return System{Kind: Galactic}, nil
	case 'E':
		return System{Kind: Ecliptic}, nil
	case 'H':
		return System{Kind: HelioEcliptic}, nil
	case 'S':
		return System{Kind: Supergalactic}, nil
	}
	return System{Kind: Equatorial}, nil
}

// EquinoxJD returns the equinox epoch of a Custom system as a Julian
// date.  Equinoxes of the FK4 family are Besselian years, all others
// Julian years.  The result is meaningless for systems other than
// Custom.
func (s System) EquinoxJD() float64 {
	switch s.RefSys {
	case FK4, FK4NoE:
		return base.BesselianYearToJDE(s.Equinox)
	}
	return base.JulianYearToJDE(s.Equinox)
}

// UnrecognizedRefSys is the error for a RADESYS value outside the
// fixed RADESYS table.
type UnrecognizedRefSys struct {
	Value string
}

func (e *UnrecognizedRefSys) Error() string {
	return "unrecognized RADESYS: " + e.Value
}
