package geocache

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// IndexBackend names a rectangle index implementation.
type IndexBackend string

const (
	BackendRTreeGo IndexBackend = "rtreego"
	BackendTidwall IndexBackend = "tidwall"
)

var ErrUnknownBackend = errors.New("unknown index backend")

// Index stores places and finds the ones containing a point. Places are
// never removed; an index is dropped as a whole when the cache is cleared.
type Index interface {
	Insert(p *Place)
	// SearchPoint returns all places containing pt, boundary inclusive,
	// that pass the filters. Order is implementation defined.
	SearchPoint(pt orb.Point, filters ...Filter) []*Place
	Len() int
}

// NewIndex builds an empty index of the given backend.
func NewIndex(backend IndexBackend) (Index, error) {
	switch backend {
	case BackendRTreeGo, "":
		return newRTreeGoIndex(), nil
	case BackendTidwall:
		return newTidwallIndex(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
