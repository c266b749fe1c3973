package geocache

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func newTestIndexes(t *testing.T) map[IndexBackend]Index {
	indexes := make(map[IndexBackend]Index)
	for _, backend := range backends {
		idx, err := NewIndex(backend)
		if err != nil {
			t.Fatalf("unexpected error creating %s index: %v", backend, err)
		}
		indexes[backend] = idx
	}
	return indexes
}

func TestIndexInsert(t *testing.T) {
	for backend, idx := range newTestIndexes(t) {
		p := newPlace(1, MakeBoundingBox(1, 2, 1, 2).Bound(), "test")
		idx.Insert(p)

		if idx.Len() != 1 {
			t.Errorf("%s: index is expected to hold 1 place, got %d", backend, idx.Len())
		}

		places := idx.SearchPoint(orb.Point{1.5, 1.5})
		if len(places) != 1 {
			t.Fatalf("%s: search is expected to return 1 place, got %d", backend, len(places))
		}
		if places[0].Payload() != "test" {
			t.Errorf("%s: search is expected to return 'test', got %v", backend, places[0].Payload())
		}

		places = idx.SearchPoint(orb.Point{0.5, 0.5})
		if len(places) != 0 {
			t.Errorf("%s: search is expected to return 0 places, got %d", backend, len(places))
		}
	}
}

func TestIndexNoDedup(t *testing.T) {
	for backend, idx := range newTestIndexes(t) {
		bound := MakeBoundingBox(0, 2, 0, 2).Bound()
		idx.Insert(newPlace(1, bound, "test"))
		idx.Insert(newPlace(2, bound, "test"))

		places := idx.SearchPoint(orb.Point{1, 1})
		if len(places) != 2 {
			t.Errorf("%s: search is expected to return 2 places, got %d", backend, len(places))
		}
	}
}

func TestIndexPartialOverlap(t *testing.T) {
	for backend, idx := range newTestIndexes(t) {
		idx.Insert(newPlace(1, MakeBoundingBox(-1, 1, -1, 1).Bound(), "a"))
		idx.Insert(newPlace(2, MakeBoundingBox(0, 2, 0, 2).Bound(), "b"))

		if n := len(idx.SearchPoint(orb.Point{0.5, 0.5})); n != 2 {
			t.Errorf("%s: overlap is expected to return 2 places, got %d", backend, n)
		}
		if n := len(idx.SearchPoint(orb.Point{1.5, 1.5})); n != 1 {
			t.Errorf("%s: search is expected to return 1 place, got %d", backend, n)
		}
	}
}

func TestIndexSearchFilters(t *testing.T) {
	for backend, idx := range newTestIndexes(t) {
		bound := MakeBoundingBox(0, 2, 0, 2).Bound()
		idx.Insert(newPlace(1, bound, "keep"))
		idx.Insert(newPlace(2, bound, "drop"))

		places := idx.SearchPoint(orb.Point{1, 1}, func(p *Place) bool {
			return p.Payload() == "keep"
		})
		if len(places) != 1 || places[0].Payload() != "keep" {
			t.Errorf("%s: filter is expected to keep 1 place, got %d", backend, len(places))
		}
	}
}

func TestIndexDegenerate(t *testing.T) {
	for backend, idx := range newTestIndexes(t) {
		pt := orb.Point{3, 3}
		idx.Insert(newPlace(1, pt.Bound(), "point"))

		if n := len(idx.SearchPoint(pt)); n != 1 {
			t.Errorf("%s: point place is expected to be found, got %d", backend, n)
		}
		if n := len(idx.SearchPoint(orb.Point{3, 3.00001})); n != 0 {
			t.Errorf("%s: search next to point place is expected to return 0 places, got %d", backend, n)
		}
	}
}

func TestNewIndexUnknown(t *testing.T) {
	_, err := NewIndex("btree")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestPlaceIDs(t *testing.T) {
	a := newPlace(1, orb.Point{0, 0}.Bound(), "a")
	b := newPlace(2, orb.Point{0, 0}.Bound(), "a")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("places are expected to get distinct ids, got %q and %q", a.ID(), b.ID())
	}
}
