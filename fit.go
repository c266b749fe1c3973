package geocache

import (
	"math"

	"github.com/paulmach/orb"
)

// needsFit reports whether box has a side longer than maxSide. A maxSide of
// zero or less means there is no limit.
func needsFit(width, height, maxSide float64) bool {
	return maxSide > 0 && (width > maxSide || height > maxSide)
}

// fitBoundingBox shrinks box so that it spans at most maxSide/2 meters from
// ref in each cardinal direction. The result keeps the box axis-aligned and
// contains ref whenever ref was inside the original box. If ref is not
// strictly inside, on the boundary included, the centre of the box is used
// instead.
//
//	NW----N------NE
//	 |    ^      |
//	 W <--p ---> E
//	 |    v      |
//	SW----S------SE
func fitBoundingBox(box BoundingBox, maxSide float64, ref orb.Point, precision uint8) BoundingBox {
	if !box.ContainsInterior(ref) {
		ref = box.Bound().Center()
	}

	half := maxSide / 2
	toTop := math.Min(distanceToEdge(box.NorthWest, box.NorthEast, ref), half)
	toBottom := math.Min(distanceToEdge(box.SouthWest, box.SouthEast, ref), half)
	toLeft := math.Min(distanceToEdge(box.NorthWest, box.SouthWest, ref), half)
	toRight := math.Min(distanceToEdge(box.NorthEast, box.SouthEast, ref), half)

	north := Destination(ref, bearingNorth, toTop)
	east := Destination(ref, bearingEast, toRight)
	south := Destination(ref, bearingSouth, toBottom)
	west := Destination(ref, bearingWest, toLeft)

	fitted := BoundingBox{
		SouthWest: orb.Point{west.Lon(), south.Lat()},
		SouthEast: orb.Point{east.Lon(), south.Lat()},
		NorthWest: orb.Point{west.Lon(), north.Lat()},
		NorthEast: orb.Point{east.Lon(), north.Lat()},
	}
	return fitted.Truncate(precision)
}
