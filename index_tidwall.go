package geocache

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// tidwallIndex keeps zero-area rectangles as they are, no padding needed.
type tidwallIndex struct {
	tr *rtree.RTreeG[*Place]
}

func newTidwallIndex() *tidwallIndex {
	var tr rtree.RTreeG[*Place]
	return &tidwallIndex{
		tr: &tr,
	}
}

func (i *tidwallIndex) Insert(p *Place) {
	i.tr.Insert(p.bounds.Min, p.bounds.Max, p)
}

func (i *tidwallIndex) SearchPoint(pt orb.Point, filters ...Filter) []*Place {
	filters = append(filters, fltContains(pt))
	fl := FilterList(filters)

	places := make([]*Place, 0, 4)
	i.tr.Search(pt, pt, func(min, max [2]float64, p *Place) bool {
		if fl.match(p) {
			places = append(places, p)
		}
		return true
	})
	log.WithField("func", "tidwallIndex.SearchPoint").Tracef("found %d places in tree", len(places))
	return places
}

func (i *tidwallIndex) Len() int {
	return i.tr.Len()
}
