package geocache

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultPrecision is the number of decimal places coordinates are rounded
// to, roughly 1.1m at the equator.
const DefaultPrecision uint8 = 5

// MaxPrecision is the largest precision a cache accepts. Past it, scaled
// coordinates no longer fit a float64 mantissa and rounding a rounded value
// may change it again.
const MaxPrecision uint8 = 12

// Truncate rounds value to the given number of decimal places, halves
// rounding away from zero. For coordinates it is idempotent up to
// MaxPrecision places.
func Truncate(value float64, places uint8) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(value*pow) / pow
}

func TruncatePoint(p orb.Point, places uint8) orb.Point {
	return orb.Point{Truncate(p[0], places), Truncate(p[1], places)}
}

// Truncate rounds all four corners to the given number of decimal places.
func (b BoundingBox) Truncate(places uint8) BoundingBox {
	return BoundingBox{
		SouthWest: TruncatePoint(b.SouthWest, places),
		SouthEast: TruncatePoint(b.SouthEast, places),
		NorthWest: TruncatePoint(b.NorthWest, places),
		NorthEast: TruncatePoint(b.NorthEast, places),
	}
}
