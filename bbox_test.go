package geocache

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxFromSlice(t *testing.T) {
	box, err := BoundingBoxFromSlice([]float64{-31, -20, -50, -40})
	require.NoError(t, err)

	assert.Equal(t, orb.Point{-50, -31}, box.SouthWest)
	assert.Equal(t, orb.Point{-40, -31}, box.SouthEast)
	assert.Equal(t, orb.Point{-50, -20}, box.NorthWest)
	assert.Equal(t, orb.Point{-40, -20}, box.NorthEast)
}

func TestBoundingBoxFromShortSlice(t *testing.T) {
	for _, v := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err := BoundingBoxFromSlice(v)
		require.Error(t, err)

		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr))
		assert.Equal(t, len(v), len(convErr.Values))
	}
}

func TestBoundingBoxBoundNormalized(t *testing.T) {
	// south above north, west right of east
	box := MakeBoundingBox(1, 0, 1, 0)
	bound := box.Bound()

	assert.Equal(t, orb.Point{0, 0}, bound.Min)
	assert.Equal(t, orb.Point{1, 1}, bound.Max)
	assert.True(t, box.Contains(orb.Point{0.5, 0.5}))
}

func TestBoundingBoxContainsBoundary(t *testing.T) {
	box := MakeBoundingBox(0, 1, 0, 1)

	assert.True(t, box.Contains(orb.Point{0, 0}))
	assert.True(t, box.Contains(orb.Point{1, 1}))
	assert.True(t, box.Contains(orb.Point{1, 0.5}))
	assert.False(t, box.Contains(orb.Point{1.00001, 0.5}))
	assert.False(t, box.Contains(orb.Point{0.5, -0.00001}))
}

func TestBoundingBoxContainsInterior(t *testing.T) {
	box := MakeBoundingBox(0, 1, 0, 1)

	assert.True(t, box.ContainsInterior(orb.Point{0.5, 0.5}))
	assert.True(t, box.ContainsInterior(orb.Point{0.00001, 0.99999}))
	for _, pt := range []orb.Point{{0, 0}, {1, 1}, {0, 0.5}, {0.5, 1}, {1.00001, 0.5}} {
		assert.False(t, box.ContainsInterior(pt), "point %v", pt)
	}
	// a box without area has no interior
	assert.False(t, MakeBoundingBox(0, 0, 0, 1).ContainsInterior(orb.Point{0.5, 0}))
}

func TestBoundingBoxDimensions(t *testing.T) {
	box := MakeBoundingBox(0, 1, 0, 1)
	meridian := Distance(orb.Point{0, 0}, orb.Point{0, 1})

	assert.InDelta(t, meridian, box.Height(), 1e-6)
	assert.InDelta(t, Distance(orb.Point{0, 1}, orb.Point{1, 1}), box.Width(), 1e-6)
	assert.InDelta(t, box.Width()*box.Height(), box.Area(), 1e-6)
}

func TestBoundingBoxRing(t *testing.T) {
	box := MakeBoundingBox(0, 1, 2, 3)
	ring := box.Ring()

	require.Len(t, ring, 5)
	assert.True(t, ring.Closed())
	assert.Equal(t, box.SouthWest, ring[0])
	assert.Equal(t, box.NorthEast, ring[2])
}
