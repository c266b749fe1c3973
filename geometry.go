package geocache

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Bearings in degrees, clockwise from north.
const (
	bearingNorth = 0.0
	bearingEast  = 90.0
	bearingSouth = 180.0
	bearingWest  = 270.0
)

// MeanEarthRadius is the IUGG mean radius of the earth in meters. orb/geo
// works on a sphere of orb.EarthRadius, the equatorial radius, so its
// results are rescaled.
const MeanEarthRadius = 6371008.8

const radiusScale = MeanEarthRadius / orb.EarthRadius

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) * radiusScale
}

// Destination returns the point reached from p travelling meters along the
// great circle with the given initial bearing.
func Destination(p orb.Point, bearing, meters float64) orb.Point {
	return geo.PointAtBearingAndDistance(p, bearing, meters/radiusScale)
}

// closestPoint returns the point of segment a-b closest to p in the lon/lat
// plane. ok is false if the segment has no length.
func closestPoint(a, b, p orb.Point) (c orb.Point, ok bool) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p, false
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / lenSq
	switch {
	case t <= 0:
		return a, true
	case t >= 1:
		return b, true
	}
	return orb.Point{a[0] + t*dx, a[1] + t*dy}, true
}

// distanceToEdge is the haversine distance from p to the closest point of
// the a-b edge. Degenerate edges count as touching p.
func distanceToEdge(a, b, p orb.Point) float64 {
	c, ok := closestPoint(a, b, p)
	if !ok {
		return 0
	}
	return Distance(c, p)
}
