// Public domain.

package proj

import (
	"github.com/soniakeys/fitswcs/header"
	"github.com/soniakeys/unit"
)

// The four conic projections share parameters: PV_1 = theta_a, the
// reference latitude of the cone, is mandatory; PV_2 = eta defaults
// to 0.

func conicParams(h *header.Header, name string) (thetaA, eta unit.Angle, err error) {
	ta, ok := h.Float("PV_1")
	if !ok {
		return 0, 0, &InitError{name,
			"PV_1 = theta_a must be defined as it has no default value"}
	}
	e := h.FloatOr("PV_2", 0)
	return unit.AngleFromDeg(ta), unit.AngleFromDeg(e), nil
}

// Cop is the conic perspective projection.
type Cop struct {
	Center
	ThetaA, Eta unit.Angle
}

func (Cop) Name() string { return "COP" }

func parseCop(h *header.Header, c Center) (Projection, error) {
	thetaA, eta, err := conicParams(h, "COP")
	if err != nil {
		return nil, err
	}
	return Cop{c, thetaA, eta}, nil
}

// Coe is the conic equal area projection.
type Coe struct {
	Center
	ThetaA, Eta unit.Angle
}

func (Coe) Name() string { return "COE" }

func parseCoe(h *header.Header, c Center) (Projection, error) {
	thetaA, eta, err := conicParams(h, "COE")
	if err != nil {
		return nil, err
	}
	return Coe{c, thetaA, eta}, nil
}

// Cod is the conic equidistant projection.
type Cod struct {
	Center
	ThetaA, Eta unit.Angle
}

func (Cod) Name() string { return "COD" }

func parseCod(h *header.Header, c Center) (Projection, error) {
	thetaA, eta, err := conicParams(h, "COD")
	if err != nil {
		return nil, err
	}
	return Cod{c, thetaA, eta}, nil
}

// Coo is the conic orthomorphic projection.
type Coo struct {
	Center
	ThetaA, Eta unit.Angle
}

func (Coo) Name() string { return "COO" }

func parseCoo(h *header.Header, c Center) (Projection, error) {
	thetaA, eta, err := conicParams(h, "COO")
	if err != nil {
		return nil, err
	}
	return Coo{c, thetaA, eta}, nil
}
