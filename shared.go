package geocache

import (
	"sync"

	"github.com/paulmach/orb"
)

// Coord is the single precision coordinate exchanged with the host
// application, x being the longitude and y the latitude.
type Coord struct {
	X float32
	Y float32
}

func NewCoord(lat, lon float32) Coord {
	return Coord{X: lon, Y: lat}
}

func (c Coord) Lat() float32 {
	return c.Y
}

func (c Coord) Lon() float32 {
	return c.X
}

func (c Coord) Point() orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

func CoordFromPoint(p orb.Point) Coord {
	return Coord{X: float32(p[0]), Y: float32(p[1])}
}

// Bbox is the single precision bounding box exchanged with the host
// application.
type Bbox struct {
	SouthWest Coord
	SouthEast Coord
	NorthWest Coord
	NorthEast Coord
}

// BboxFromSlice is BoundingBoxFromSlice for the host type.
func BboxFromSlice(v []float64) (Bbox, error) {
	b, err := BoundingBoxFromSlice(v)
	if err != nil {
		return Bbox{}, err
	}
	return BboxFromBoundingBox(b), nil
}

func BboxFromBoundingBox(b BoundingBox) Bbox {
	return Bbox{
		SouthWest: CoordFromPoint(b.SouthWest),
		SouthEast: CoordFromPoint(b.SouthEast),
		NorthWest: CoordFromPoint(b.NorthWest),
		NorthEast: CoordFromPoint(b.NorthEast),
	}
}

func (b Bbox) BoundingBox() BoundingBox {
	return BoundingBox{
		SouthWest: b.SouthWest.Point(),
		SouthEast: b.SouthEast.Point(),
		NorthWest: b.NorthWest.Point(),
		NorthEast: b.NorthEast.Point(),
	}
}

var (
	sharedOnce  sync.Once
	sharedCache *SyncCache
)

// Shared returns the process-wide cache, creating it on first use with the
// default options.
func Shared() *SyncCache {
	sharedOnce.Do(func() {
		sharedCache = NewSync(MustNew())
	})
	return sharedCache
}

// SetBBox stores payload under box in the shared cache. ref is optional.
func SetBBox(payload string, box Bbox, ref *Coord) error {
	var p *orb.Point
	if ref != nil {
		pt := ref.Point()
		p = &pt
	}
	_, err := Shared().Set(payload, box.BoundingBox(), p)
	return err
}

// Get looks c up in the shared cache.
func Get(c Coord) (string, bool, error) {
	return Shared().Get(c.Point())
}

// Clear empties the shared cache.
func Clear() {
	Shared().Clear()
}
