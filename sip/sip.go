// Public domain.

// Package sip resolves the Simple Imaging Polynomial distortion
// keywords of a FITS header.
//
// For the SIP convention, see "The SIP Convention for Representing
// Distortion in FITS Image Headers" by David L. Shupe et al. in the
// proceedings of ADASS XIV (2005).
package sip

import (
	"fmt"

	"github.com/soniakeys/fitswcs/header"
)

// Coeffs is a triangular grid of polynomial coefficients up to a
// declared order.  The grid holds a coefficient for every (i, j) with
// i, j >= 0 and i+j <= Order, (Order+1)(Order+2)/2 in all.
type Coeffs struct {
	Order int
	// coefficients in row-major triangular layout, row i holding
	// j = 0 .. Order-i
	C []float64
}

// At returns the coefficient of u^i v^j.
func (c *Coeffs) At(i, j int) float64 {
	return c.C[i*(c.Order+1)-i*(i-1)/2+j]
}

// parseGrid reads the coefficient grid of one of the tags A, B, AP,
// BP.  Ok is false if the <tag>_ORDER keyword is absent.  Absent
// coefficient cards default to 0.
func parseGrid(h *header.Header, tag string) (*Coeffs, bool) {
	n, ok := h.Int(tag + "_ORDER")
	if !ok {
		return nil, false
	}
	c := &Coeffs{Order: n, C: make([]float64, 0, (n+1)*(n+2)/2)}
	for i := 0; i <= n; i++ {
		for j := 0; j <= n-i; j++ {
			c.C = append(c.C,
				h.FloatOr(fmt.Sprintf("%s_%d_%d", tag, i, j), 0))
		}
	}
	return c, true
}

// Model is a resolved SIP distortion: the forward pixel correction
// grids A and B, the optional inverse grids AP and BP, and the pixel
// offset rectangle over which the correction is valid.
type Model struct {
	A, B   *Coeffs
	AP, BP *Coeffs // both present or both nil
	// validity rectangle in pixel offsets from the reference pixel
	UMin, UMax float64
	VMin, VMax float64
}

// Inverse reports whether the model carries the inverse correction
// grids.
func (m *Model) Inverse() bool { return m.AP != nil }

// Parse resolves the SIP keywords of a header.  Arguments crpix1 and
// crpix2 are the reference pixel coordinates from the CRPIX keywords.
//
// The forward grids A and B are both required.  The inverse grids are
// optional but paired: if only one of AP_ORDER, BP_ORDER is present
// the inverse model is dropped, not an error.  NAXIS1 and NAXIS2 must
// be present to bound the validity rectangle.
func Parse(h *header.Header, crpix1, crpix2 float64) (*Model, error) {
	a, ok := parseGrid(h, "A")
	if !ok {
		return nil, &header.MissingKeyword{Keyword: "A_ORDER"}
	}
	b, ok := parseGrid(h, "B")
	if !ok {
		return nil, &header.MissingKeyword{Keyword: "B_ORDER"}
	}
	m := &Model{A: a, B: b}
	ap, okAP := parseGrid(h, "AP")
	bp, okBP := parseGrid(h, "BP")
	if okAP && okBP {
		m.AP, m.BP = ap, bp
	}
	n1, ok := h.Naxis(1)
	if !ok {
		return nil, &header.MissingKeyword{Keyword: "NAXIS1"}
	}
	n2, ok := h.Naxis(2)
	if !ok {
		return nil, &header.MissingKeyword{Keyword: "NAXIS2"}
	}
	m.UMin, m.UMax = -crpix1, float64(n1)-crpix1
	m.VMin, m.VMax = -crpix2, float64(n2)-crpix2
	return m, nil
}
