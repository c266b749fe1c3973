package geocache

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	// a degree of arc on the sphere
	degree := MeanEarthRadius * math.Pi / 180

	assert.InDelta(t, degree, Distance(orb.Point{0, 0}, orb.Point{1, 0}), 1e-6)
	assert.InDelta(t, degree, Distance(orb.Point{10, 0}, orb.Point{10, 1}), 1e-6)
	assert.Equal(t, 0.0, Distance(orb.Point{-51.18335, -30.0127}, orb.Point{-51.18335, -30.0127}))
}

func TestDestination(t *testing.T) {
	start := orb.Point{-45.222222, -25.111111}

	testCases := []struct {
		name    string
		bearing float64
		check   func(t *testing.T, p orb.Point)
	}{
		{"north", bearingNorth, func(t *testing.T, p orb.Point) {
			assert.InDelta(t, start.Lon(), p.Lon(), 1e-9)
			assert.Greater(t, p.Lat(), start.Lat())
		}},
		{"south", bearingSouth, func(t *testing.T, p orb.Point) {
			assert.InDelta(t, start.Lon(), p.Lon(), 1e-9)
			assert.Less(t, p.Lat(), start.Lat())
		}},
		{"east", bearingEast, func(t *testing.T, p orb.Point) {
			assert.Greater(t, p.Lon(), start.Lon())
		}},
		{"west", bearingWest, func(t *testing.T, p orb.Point) {
			assert.Less(t, p.Lon(), start.Lon())
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Destination(start, tc.bearing, 5000)
			tc.check(t, p)
			assert.InDelta(t, 5000, Distance(start, p), 0.01)
		})
	}
}

func TestClosestPoint(t *testing.T) {
	a := orb.Point{0, 0}
	b := orb.Point{2, 0}

	testCases := []struct {
		name     string
		p        orb.Point
		expected orb.Point
	}{
		{"projection inside", orb.Point{1, 1}, orb.Point{1, 0}},
		{"before start", orb.Point{-1, 1}, a},
		{"after end", orb.Point{3, -1}, b},
		{"on segment", orb.Point{0.5, 0}, orb.Point{0.5, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := closestPoint(a, b, tc.p)
			assert.True(t, ok)
			assert.InDelta(t, tc.expected[0], c[0], 1e-12)
			assert.InDelta(t, tc.expected[1], c[1], 1e-12)
		})
	}
}

func TestClosestPointDegenerate(t *testing.T) {
	p := orb.Point{1, 1}
	c, ok := closestPoint(orb.Point{0, 0}, orb.Point{0, 0}, p)

	assert.False(t, ok)
	assert.Equal(t, p, c)
	assert.Equal(t, 0.0, distanceToEdge(orb.Point{0, 0}, orb.Point{0, 0}, p))
}
