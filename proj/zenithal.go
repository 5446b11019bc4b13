// Public domain.

package proj

import (
	"fmt"
	"math"

	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/unit"
)

// Azp is the zenithal perspective projection.
type Azp struct {
	Center
	Mu    float64    // distance of the projection point, spherical radii
	Gamma unit.Angle // tilt of the projection plane
}

func (Azp) Name() string { return "AZP" }

func parseAzp(h *header.Header, c Center) (Projection, error) {
	mu := h.FloatOr("PV_1", 0)
	gamma := h.FloatOr("PV_2", 0)
	return Azp{c, mu, unit.AngleFromDeg(gamma)}, nil
}

// Szp is the slant zenithal perspective projection.
type Szp struct {
	Center
	Mu           float64 // distance of the projection point, spherical radii
	PhiC, ThetaC unit.Angle
}

func (Szp) Name() string { return "SZP" }

func parseSzp(h *header.Header, c Center) (Projection, error) {
	mu := h.FloatOr("PV_1", 0)
	phiC := h.FloatOr("PV_2", 0)
	thetaC := h.FloatOr("PV_3", 90)
	return Szp{c, mu, unit.AngleFromDeg(phiC), unit.AngleFromDeg(thetaC)}, nil
}

// Tan is the gnomonic projection.
type Tan struct{ Center }

func (Tan) Name() string { return "TAN" }

func parseTan(h *header.Header, c Center) (Projection, error) {
	return Tan{c}, nil
}

// Stg is the stereographic projection.
type Stg struct{ Center }

func (Stg) Name() string { return "STG" }

func parseStg(h *header.Header, c Center) (Projection, error) {
	return Stg{c}, nil
}

// Sin is the orthographic projection.
type Sin struct{ Center }

func (Sin) Name() string { return "SIN" }

// SinSlant is the slant orthographic projection, selected for code
// SIN when a PV_1 or PV_2 card is present.
type SinSlant struct {
	Center
	Xi  float64 // the negated PV_1 card value
	Eta float64
}

func (SinSlant) Name() string { return "SIN" }

func parseSin(h *header.Header, c Center) (Projection, error) {
	xi, okXi := h.Float("PV_1")
	eta, okEta := h.Float("PV_2")
	if !okXi && !okEta {
		return Sin{c}, nil
	}
	return SinSlant{c, -xi, eta}, nil
}

// Arc is the zenithal equidistant projection.
type Arc struct{ Center }

func (Arc) Name() string { return "ARC" }

func parseArc(h *header.Header, c Center) (Projection, error) {
	return Arc{c}, nil
}

// Zpn is the zenithal polynomial projection.  Coeffs holds the
// polynomial in the native colatitude, ascending order.
type Zpn struct {
	Center
	Coeffs []float64
}

func (Zpn) Name() string { return "ZPN" }

func parseZpn(h *header.Header, c Center) (Projection, error) {
	// An unbroken run of absent cards at the high order end is not
	// part of the polynomial.  Interior absent cards default to 0.
	n := 20
	for ; n >= 0; n-- {
		if _, ok := h.Float(fmt.Sprintf("PV_%d", n)); ok {
			break
		}
	}
	coeffs := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		coeffs[i] = h.FloatOr(fmt.Sprintf("PV_%d", i), 0)
	}
	if !nonNegative(coeffs) {
		return nil, &InitError{"ZPN", "negative polynomial in [0, pi]"}
	}
	return Zpn{c, coeffs}, nil
}

// nonNegative reports whether the polynomial with the given ascending
// coefficients stays non-negative over [0, pi], by dense sampling.
func nonNegative(p []float64) bool {
	const samples = 1 << 10
	for i := 0; i <= samples; i++ {
		x := math.Pi * float64(i) / samples
		s := 0.
		for j := len(p) - 1; j >= 0; j-- {
			s = s*x + p[j]
		}
		if s < 0 {
			return false
		}
	}
	return true
}

// Zea is the zenithal equal area projection.
type Zea struct{ Center }

func (Zea) Name() string { return "ZEA" }

func parseZea(h *header.Header, c Center) (Projection, error) {
	return Zea{c}, nil
}

// Air is the Airy projection.
type Air struct {
	Center
	ThetaB unit.Angle
}

func (Air) Name() string { return "AIR" }

func parseAir(h *header.Header, c Center) (Projection, error) {
	thetaB := h.FloatOr("PV_1", 90)
	return Air{c, unit.AngleFromDeg(thetaB)}, nil
}

// Ncp is the north celestial pole projection, the historic special
// case of the slant orthographic.
type Ncp struct{ Center }

func (Ncp) Name() string { return "NCP" }

func parseNcp(h *header.Header, c Center) (Projection, error) {
	return Ncp{c}, nil
}
