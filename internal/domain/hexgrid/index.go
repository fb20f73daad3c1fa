package hexgrid

import (
	"math"

	"github.com/paulmach/orb"
)

// PointToCell converts a BNG coordinate to the (row, col) address of the
// containing cell at the given zoom level.
//
// The layout is a brick-laid offset grid: rows are spaced 1.5·radius apart
// and odd rows shift horizontally by half the pitch. Rounding uses
// math.Round (half away from zero) so every point maps to exactly one cell.
// Coordinates outside the grid extent are not rejected and produce
// deterministic, possibly negative, indices.
func PointToCell(p orb.Point, zoom int) (row, col int64, err error) {
	if zoom < 0 || zoom > MaxZoomLevel {
		return 0, 0, &InvalidZoomLevelError{Zoom: zoom}
	}

	dx := CellWidths[zoom]
	dy := 1.5 * CellRadius[zoom]

	qx := (p.X() - GridExtent.Min.X()) / dx
	ry := (p.Y() - GridExtent.Min.Y()) / dy

	row = int64(math.Round(ry))
	col = int64(math.Round(qx - float64(row%2)))
	return row, col, nil
}

// CellToPoint converts a (row, col) address at the given zoom level back to
// the cell's center point in BNG coordinates.
func CellToPoint(row, col int64, zoom int) (orb.Point, error) {
	if zoom < 0 || zoom > MaxZoomLevel {
		return orb.Point{}, &InvalidZoomLevelError{Zoom: zoom}
	}

	dx := CellWidths[zoom]
	dy := 1.5 * CellRadius[zoom]

	x := GridExtent.Min.X() + float64(col)*dx + float64(row%2)*(dx/2)
	y := GridExtent.Min.Y() + float64(row)*dy
	return orb.Point{x, y}, nil
}
