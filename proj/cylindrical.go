// Public domain.

package proj

import "github.com/soniakeys/fitswcs/header"

// Cyp is the cylindrical perspective projection.
type Cyp struct {
	Center
	Mu, Lambda float64 // spherical radii
}

func (Cyp) Name() string { return "CYP" }

func parseCyp(h *header.Header, c Center) (Projection, error) {
	mu := h.FloatOr("PV_1", 1)
	lambda := h.FloatOr("PV_2", 1)
	return Cyp{c, mu, lambda}, nil
}

// Cea is the cylindrical equal area projection.
type Cea struct {
	Center
	Lambda float64 // spherical radii
}

func (Cea) Name() string { return "CEA" }

func parseCea(h *header.Header, c Center) (Projection, error) {
	lambda := h.FloatOr("PV_1", 1)
	return Cea{c, lambda}, nil
}

// Car is the plate carree projection.
type Car struct{ Center }

func (Car) Name() string { return "CAR" }

func parseCar(h *header.Header, c Center) (Projection, error) {
	return Car{c}, nil
}

// Mer is the Mercator projection.
type Mer struct{ Center }

func (Mer) Name() string { return "MER" }

func parseMer(h *header.Header, c Center) (Projection, error) {
	return Mer{c}, nil
}
