package geocache

import (
	"reflect"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50

	// rtreego rejects rectangles with a zero side, so degenerate places
	// and query points get this extent in degrees.
	minExtent = 1e-9
)

// spatialPlace wraps a place to implement rtreego.Spatial
type spatialPlace struct {
	*Place
	rect *rtreego.Rect
}

func (sp *spatialPlace) Bounds() *rtreego.Rect {
	return sp.rect
}

func toRTreeRect(b orb.Bound) *rtreego.Rect {
	w := max(b.Max[0]-b.Min[0], minExtent)
	h := max(b.Max[1]-b.Min[1], minExtent)
	rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
	if err != nil {
		rect = rtreego.Point{b.Min[0], b.Min[1]}.ToRect(minExtent)
	}
	return rect
}

type rtreeGoIndex struct {
	tree *rtreego.Rtree
}

func newRTreeGoIndex() *rtreeGoIndex {
	return &rtreeGoIndex{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}
}

func (i *rtreeGoIndex) Insert(p *Place) {
	i.tree.Insert(&spatialPlace{Place: p, rect: toRTreeRect(p.bounds)})
}

func (i *rtreeGoIndex) SearchPoint(pt orb.Point, filters ...Filter) []*Place {
	l := log.WithFields(logrus.Fields{
		"func":  "rtreeGoIndex.SearchPoint",
		"point": pt,
	})

	filters = append(filters, fltContains(pt))
	query := rtreego.Point{pt[0], pt[1]}.ToRect(minExtent)
	spatials := i.tree.SearchIntersect(query, FilterList(filters).toRTreeGoFilterList()...)
	l.Tracef("found %d places in tree", len(spatials))

	places := make([]*Place, 0, len(spatials))
	for _, spatial := range spatials {
		sp, ok := spatial.(*spatialPlace)
		if ok {
			places = append(places, sp.Place)
		} else {
			l.WithField("type", reflect.TypeOf(spatial).String()).Error("unexpected object type")
		}
	}
	return places
}

func (i *rtreeGoIndex) Len() int {
	return i.tree.Size()
}
