package geocache

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

type Filter func(p *Place) bool
type FilterList []Filter

func (f Filter) toRTreeGoFilter() rtreego.Filter {
	return func(results []rtreego.Spatial, object rtreego.Spatial) (refuse bool, abort bool) {
		sp, ok := object.(*spatialPlace)
		refuse = !ok || !f(sp.Place)
		return
	}
}

func (fl FilterList) toRTreeGoFilterList() []rtreego.Filter {
	if fl == nil {
		return []rtreego.Filter{}
	}
	filters := make([]rtreego.Filter, len(fl))
	for i := 0; i < len(fl); i++ {
		filters[i] = fl[i].toRTreeGoFilter()
	}
	return filters
}

// match reports whether p passes every filter in the list.
func (fl FilterList) match(p *Place) bool {
	for _, f := range fl {
		if !f(p) {
			return false
		}
	}
	return true
}

// fltContains drops places whose exact bounds don't contain pt. Index
// rectangles may be padded, so tree hits are always checked with it.
func fltContains(pt orb.Point) Filter {
	return func(p *Place) bool {
		return p.Contains(pt)
	}
}
