// Public domain.

// Package proj resolves FITS WCS projection keywords into typed
// projection descriptors.
//
// Zenithal, cylindrical, pseudo-cylindrical and conic projections are
// supported.  Bonne, polyconic and the cubic family are not.
//
// A descriptor carries the projection center from the CRVAL keywords
// and the parameters of its PV cards, with defaults applied.  All
// angles are unit.Angle, converted from the degree valued cards at
// extraction.  The descriptors hold parameters only; the projection
// math consuming them lives elsewhere.
package proj

import (
	"fmt"

	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/unit"
)

// Center is the sky position of the projection center, from the
// CRVAL1 and CRVAL2 keywords.
type Center struct {
	Lon, Lat unit.Angle
}

// ProjCenter returns the projection center.  It makes Center a
// building block for the descriptor types, which embed it.
func (c Center) ProjCenter() Center { return c }

// Projection is a resolved descriptor of one of the supported sky
// projections.  The concrete types in this package are the complete
// set.
type Projection interface {
	// Name returns the three letter projection code.
	Name() string
	// ProjCenter returns the sky position of the projection center.
	ProjCenter() Center
}

var parsers = map[string]func(*header.Header, Center) (Projection, error){
	// zenithal
	"AZP": parseAzp,
	"SZP": parseSzp,
	"TAN": parseTan,
	"STG": parseStg,
	"SIN": parseSin,
	"ARC": parseArc,
	"ZPN": parseZpn,
	"ZEA": parseZea,
	"AIR": parseAir,
	"NCP": parseNcp,
	// cylindrical
	"CYP": parseCyp,
	"CEA": parseCea,
	"CAR": parseCar,
	"MER": parseMer,
	// pseudo-cylindrical
	"SFL": parseSfl,
	"PAR": parsePar,
	"MOL": parseMol,
	"AIT": parseAit,
	// conic
	"COP": parseCop,
	"COE": parseCoe,
	"COD": parseCod,
	"COO": parseCoo,
}

// Parse resolves the projection descriptor for the given projection
// code.  The projection center is read from the CRVAL keywords,
// defaulting to the origin.
func Parse(h *header.Header, code string) (Projection, error) {
	p, ok := parsers[code]
	if !ok {
		return nil, &Unsupported{code}
	}
	c := Center{
		Lon: unit.AngleFromDeg(h.FloatOr("CRVAL1", 0)),
		Lat: unit.AngleFromDeg(h.FloatOr("CRVAL2", 0)),
	}
	return p(h, c)
}

// Unsupported is the error for a projection code outside the
// supported set.
type Unsupported struct {
	Code string
}

func (e *Unsupported) Error() string {
	return "unsupported projection: " + e.Code
}

// InitError is the error for a projection whose own parameter
// constraints are violated.
type InitError struct {
	Name   string
	Reason string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("projection %s: %s", e.Name, e.Reason)
}
