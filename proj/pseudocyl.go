// Public domain.

package proj

import "github.com/soniakeys/fitswcs/header"

// Sfl is the Sanson-Flamsteed projection.
type Sfl struct{ Center }

func (Sfl) Name() string { return "SFL" }

func parseSfl(h *header.Header, c Center) (Projection, error) {
	return Sfl{c}, nil
}

// Par is the parabolic projection.
type Par struct{ Center }

func (Par) Name() string { return "PAR" }

func parsePar(h *header.Header, c Center) (Projection, error) {
	return Par{c}, nil
}

// Mol is the Mollweide projection.
type Mol struct{ Center }

func (Mol) Name() string { return "MOL" }

func parseMol(h *header.Header, c Center) (Projection, error) {
	return Mol{c}, nil
}

// Ait is the Hammer-Aitoff projection.
type Ait struct{ Center }

func (Ait) Name() string { return "AIT" }

func parseAit(h *header.Header, c Center) (Projection, error) {
	return Ait{c}, nil
}
