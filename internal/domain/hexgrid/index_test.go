package hexgrid

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointToCellAndBack(t *testing.T) {
	p := orb.Point{457996.0, 339874.0}

	row, col, err := PointToCell(p, 10)
	require.NoError(t, err)

	center, err := CellToPoint(row, col, 10)
	require.NoError(t, err)

	assert.InDelta(t, 457925.0, center.X(), 100.0)
	assert.InDelta(t, 339888.99, center.Y(), 100.0)
}

// Re-indexing a reconstructed center is a fixed point: once snapped, a point
// never drifts to another cell.
func TestIndexingConverges(t *testing.T) {
	points := []orb.Point{
		{383640.0, 398260.0},
		{457996.0, 339874.0},
		{12.5, 7.25},
		{749999.0, 1349999.0},
	}

	for zoom := 0; zoom <= MaxZoomLevel; zoom++ {
		for _, p := range points {
			row, col, err := PointToCell(p, zoom)
			require.NoError(t, err)

			center, err := CellToPoint(row, col, zoom)
			require.NoError(t, err)

			// Within one cell pitch of the original point.
			pitch := CellWidths[zoom]
			dx := center.X() - p.X()
			dy := center.Y() - p.Y()
			assert.LessOrEqual(t, math.Sqrt(dx*dx+dy*dy), pitch*math.Sqrt2,
				"zoom %d point %v", zoom, p)

			row2, col2, err := PointToCell(center, zoom)
			require.NoError(t, err)
			assert.Equal(t, row, row2)
			assert.Equal(t, col, col2)
		}
	}
}

func TestPointToCellDeterministic(t *testing.T) {
	p := orb.Point{383640.0, 398260.0}

	row1, col1, err := PointToCell(p, 12)
	require.NoError(t, err)
	row2, col2, err := PointToCell(p, 12)
	require.NoError(t, err)

	assert.Equal(t, row1, row2)
	assert.Equal(t, col1, col2)
}

func TestPointToCellOutsideExtent(t *testing.T) {
	// Out-of-extent coordinates are not rejected and index deterministically.
	row, col, err := PointToCell(orb.Point{-50000.0, -75000.0}, 10)
	require.NoError(t, err)
	assert.Negative(t, row)
	assert.Negative(t, col)
}

func TestInvalidZoomLevel(t *testing.T) {
	_, _, err := PointToCell(orb.Point{457996.0, 339874.0}, 20)

	var zoomErr *InvalidZoomLevelError
	require.True(t, errors.As(err, &zoomErr))
	assert.Equal(t, 20, zoomErr.Zoom)

	_, err = CellToPoint(100, 100, 16)
	assert.Error(t, err)

	_, _, err = PointToCell(orb.Point{457996.0, 339874.0}, -1)
	assert.Error(t, err)
}
