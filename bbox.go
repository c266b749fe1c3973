package geocache

import (
	"fmt"

	"github.com/paulmach/orb"
)

// BoundingBox is described by its four corners, x being the longitude and y
// the latitude. North corners are expected to lie above south corners and
// east corners right of west ones, but this is not enforced: the rectangle
// used for indexing always spans NorthWest and SouthEast, whatever their
// order.
type BoundingBox struct {
	SouthWest orb.Point
	SouthEast orb.Point
	NorthWest orb.Point
	NorthEast orb.Point
}

// ConversionError is returned when a bounding box can't be built from a
// numeric sequence.
type ConversionError struct {
	Values []float64
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("bounding box conversion error: expected [south, north, west, east], got %v", e.Values)
}

// MakeBoundingBox builds an axis-aligned box out of its edges.
func MakeBoundingBox(south, north, west, east float64) BoundingBox {
	return BoundingBox{
		SouthWest: orb.Point{west, south},
		SouthEast: orb.Point{east, south},
		NorthWest: orb.Point{west, north},
		NorthEast: orb.Point{east, north},
	}
}

// BoundingBoxFromSlice builds a box out of [south, north, west, east], the
// ordering Nominatim uses for its "boundingbox" field. Extra elements are
// ignored.
func BoundingBoxFromSlice(v []float64) (BoundingBox, error) {
	if len(v) < 4 {
		values := make([]float64, len(v))
		copy(values, v)
		return BoundingBox{}, &ConversionError{Values: values}
	}
	return MakeBoundingBox(v[0], v[1], v[2], v[3]), nil
}

// Bound returns the rectangle spanned by the north-west and south-east
// corners.
func (b BoundingBox) Bound() orb.Bound {
	return orb.MultiPoint{b.NorthWest, b.SouthEast}.Bound()
}

// Contains reports whether p lies inside the box, boundary inclusive.
func (b BoundingBox) Contains(p orb.Point) bool {
	return b.Bound().Contains(p)
}

// ContainsInterior reports whether p lies strictly inside the box. Points on
// an edge or a corner are outside.
func (b BoundingBox) ContainsInterior(p orb.Point) bool {
	bound := b.Bound()
	return p[0] > bound.Min[0] && p[0] < bound.Max[0] &&
		p[1] > bound.Min[1] && p[1] < bound.Max[1]
}

// Width is the haversine distance in meters along the north edge.
func (b BoundingBox) Width() float64 {
	return Distance(b.NorthEast, b.NorthWest)
}

// Height is the haversine distance in meters along the east edge.
func (b BoundingBox) Height() float64 {
	return Distance(b.NorthEast, b.SouthEast)
}

// Area is width times height. It is not the geodesic area of the box.
func (b BoundingBox) Area() float64 {
	return b.Width() * b.Height()
}

// Ring returns the closed ring SW, SE, NE, NW, SW.
func (b BoundingBox) Ring() orb.Ring {
	return orb.Ring{b.SouthWest, b.SouthEast, b.NorthEast, b.NorthWest, b.SouthWest}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[sw=%v se=%v nw=%v ne=%v]", b.SouthWest, b.SouthEast, b.NorthWest, b.NorthEast)
}
