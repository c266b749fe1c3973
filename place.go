package geocache

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Place is a cached rectangle tagged with its payload.
type Place struct {
	id      string
	seq     uint64
	bounds  orb.Bound
	payload string
}

func newPlace(seq uint64, bounds orb.Bound, payload string) *Place {
	return &Place{
		id:      uuid.New().String(),
		seq:     seq,
		bounds:  bounds,
		payload: payload,
	}
}

// ID is a random identifier telling apart entries that share a payload.
func (p *Place) ID() string {
	return p.id
}

func (p *Place) Bounds() orb.Bound {
	return p.bounds
}

func (p *Place) Payload() string {
	return p.payload
}

// Contains reports whether pt is inside the place, boundary inclusive.
func (p *Place) Contains(pt orb.Point) bool {
	return p.bounds.Contains(pt)
}
