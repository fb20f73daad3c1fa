package hexgrid

import (
	"runtime"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Grid is an ordered, duplicate-free collection of cells sharing one zoom
// level. Grids are built once and never mutated.
type Grid struct {
	cells []*Cell
	zoom  int
}

// GridSource selects what a grid is generated over. Exactly one of
// ExtentSource, PolygonSource, or MultiPolygonSource is passed to NewGrid;
// the compiler enforces that a source is present.
type GridSource interface {
	generate(zoom int) []*Cell
}

// ExtentSource generates over a bounding box in BNG coordinates.
type ExtentSource struct {
	MinX, MinY, MaxX, MaxY float64
}

func (s ExtentSource) generate(zoom int) []*Cell {
	return cellsForExtent(s.MinX, s.MinY, s.MaxX, s.MaxY, zoom)
}

// PolygonSource generates over a polygon in BNG coordinates.
type PolygonSource struct {
	Polygon orb.Polygon
}

func (s PolygonSource) generate(zoom int) []*Cell {
	return cellsForPolygon(s.Polygon, zoom)
}

// MultiPolygonSource generates over a multipolygon in BNG coordinates.
type MultiPolygonSource struct {
	MultiPolygon orb.MultiPolygon
}

func (s MultiPolygonSource) generate(zoom int) []*Cell {
	return cellsForMultiPolygon(s.MultiPolygon, zoom)
}

// NewGrid generates the grid covering the given source at the given zoom
// level. A zoom outside 0..15 yields an empty grid rather than an error, so
// a malformed zoom never aborts a large request partway through.
func NewGrid(zoom int, source GridSource) *Grid {
	return &Grid{cells: source.generate(zoom), zoom: zoom}
}

// GridFromExtent generates the grid covering a BNG bounding box.
func GridFromExtent(minX, minY, maxX, maxY float64, zoom int) *Grid {
	return NewGrid(zoom, ExtentSource{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
}

// GridFromBound generates the grid covering an orb.Bound.
func GridFromBound(b orb.Bound, zoom int) *Grid {
	return GridFromExtent(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y(), zoom)
}

// GridFromPolygon generates the grid of cells whose hexagons intersect the
// polygon. Edge-touching counts as intersecting.
func GridFromPolygon(poly orb.Polygon, zoom int) *Grid {
	return NewGrid(zoom, PolygonSource{Polygon: poly})
}

// GridFromMultiPolygon generates the grids of every sub-polygon in parallel
// and concatenates them, deduplicated by identifier keeping the first
// occurrence.
func GridFromMultiPolygon(mp orb.MultiPolygon, zoom int) *Grid {
	return NewGrid(zoom, MultiPolygonSource{MultiPolygon: mp})
}

// Zoom returns the zoom level shared by every cell in the grid.
func (g *Grid) Zoom() int {
	return g.zoom
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsEmpty reports whether the grid holds no cells.
func (g *Grid) IsEmpty() bool {
	return len(g.cells) == 0
}

// Cells returns the grid's cells in generation order.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// CellAt returns the grid cell containing the given BNG point, if the grid
// holds it.
func (g *Grid) CellAt(p orb.Point) (*Cell, bool) {
	row, col, err := PointToCell(p, g.zoom)
	if err != nil {
		return nil, false
	}
	for _, cell := range g.cells {
		if cell.Row == row && cell.Col == col {
			return cell, true
		}
	}
	return nil, false
}

// Filter returns the order-preserving subsequence of cells matching the
// predicate.
func (g *Grid) Filter(predicate func(*Cell) bool) []*Cell {
	var out []*Cell
	for _, cell := range g.cells {
		if predicate(cell) {
			out = append(out, cell)
		}
	}
	return out
}

// Polygons returns the hexagon boundary of every cell, in grid order.
func (g *Grid) Polygons() []orb.Polygon {
	polygons := make([]orb.Polygon, len(g.cells))
	for i, cell := range g.cells {
		polygons[i] = cell.ToPolygon()
	}
	return polygons
}

// maxWorkers bounds the fan-out of bulk generation.
var maxWorkers = runtime.NumCPU()

// cellsForExtent enumerates every (row, col) in the rectangle spanned by the
// four bbox corners, row-major, dropping candidates whose center lies below
// the grid origin on either axis. Rows are generated in parallel and
// gathered by index, so the output order is deterministic regardless of
// scheduling.
func cellsForExtent(minX, minY, maxX, maxY float64, zoom int) []*Cell {
	if zoom < 0 || zoom > MaxZoomLevel {
		return nil
	}

	corners := []orb.Point{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
	}
	var minRow, maxRow, minCol, maxCol int64
	for i, corner := range corners {
		row, col, err := PointToCell(corner, zoom)
		if err != nil {
			return nil
		}
		if i == 0 || row < minRow {
			minRow = row
		}
		if i == 0 || row > maxRow {
			maxRow = row
		}
		if i == 0 || col < minCol {
			minCol = col
		}
		if i == 0 || col > maxCol {
			maxCol = col
		}
	}

	rows := make([][]*Cell, maxRow-minRow+1)
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for row := minRow; row <= maxRow; row++ {
		wg.Add(1)
		go func(idx int, row int64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			out := make([]*Cell, 0, maxCol-minCol+1)
			for col := minCol; col <= maxCol; col++ {
				center, err := CellToPoint(row, col, zoom)
				if err != nil {
					continue
				}
				if center.X() < GridExtent.Min.X() || center.Y() < GridExtent.Min.Y() {
					continue
				}
				id := EncodeIdentifier(center.X(), center.Y(), zoom)
				out = append(out, newCell(id, center, zoom, row, col))
			}
			rows[idx] = out
		}(int(row-minRow), row)
	}
	wg.Wait()

	var cells []*Cell
	for _, rowCells := range rows {
		cells = append(cells, rowCells...)
	}
	return cells
}

// cellsForPolygon keeps the extent candidates whose hexagon intersects the
// polygon. The intersection tests run in parallel into an indexed mask; the
// kept subsequence is collected sequentially in candidate order.
func cellsForPolygon(poly orb.Polygon, zoom int) []*Cell {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return nil
	}

	bound := poly.Bound()
	candidates := cellsForExtent(bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y(), zoom)
	if len(candidates) == 0 {
		return nil
	}

	keep := make([]bool, len(candidates))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate *Cell) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			keep[i] = hexIntersectsPolygon(candidate.ToPolygon(), poly)
		}(i, candidate)
	}
	wg.Wait()

	var cells []*Cell
	for i, candidate := range candidates {
		if keep[i] {
			cells = append(cells, candidate)
		}
	}
	return cells
}

// cellsForMultiPolygon expands each sub-polygon in parallel, then
// concatenates and deduplicates by identifier, strictly sequentially,
// keeping the first occurrence.
func cellsForMultiPolygon(mp orb.MultiPolygon, zoom int) []*Cell {
	parts := make([][]*Cell, len(mp))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, poly := range mp {
		wg.Add(1)
		go func(i int, poly orb.Polygon) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			parts[i] = cellsForPolygon(poly, zoom)
		}(i, poly)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var cells []*Cell
	for _, part := range parts {
		for _, cell := range part {
			if _, ok := seen[cell.ID]; ok {
				continue
			}
			seen[cell.ID] = struct{}{}
			cells = append(cells, cell)
		}
	}
	return cells
}

// hexIntersectsPolygon reports whether a hexagon and a polygon share any
// point. Edge-touching counts.
func hexIntersectsPolygon(hex, poly orb.Polygon) bool {
	for _, pt := range hex[0] {
		if planar.PolygonContains(poly, pt) {
			return true
		}
	}
	for _, ring := range poly {
		for _, pt := range ring {
			if planar.PolygonContains(hex, pt) {
				return true
			}
		}
	}

	hexRing := hex[0]
	for _, ring := range poly {
		for i := 0; i+1 < len(ring); i++ {
			for j := 0; j+1 < len(hexRing); j++ {
				if segmentsIntersect(ring[i], ring[i+1], hexRing[j], hexRing[j+1]) {
					return true
				}
			}
		}
	}
	return false
}

// segmentsIntersect reports whether segments ab and cd share any point,
// including collinear overlap and endpoint touches.
func segmentsIntersect(a, b, c, d orb.Point) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	return (o1 == 0 && onSegment(a, c, b)) ||
		(o2 == 0 && onSegment(a, d, b)) ||
		(o3 == 0 && onSegment(c, a, d)) ||
		(o4 == 0 && onSegment(c, b, d))
}

// orientation returns the turn direction of the triplet (p, q, r):
// 0 collinear, 1 clockwise, 2 counterclockwise.
func orientation(p, q, r orb.Point) int {
	v := (q.Y()-p.Y())*(r.X()-q.X()) - (q.X()-p.X())*(r.Y()-q.Y())
	switch {
	case v > 0:
		return 1
	case v < 0:
		return 2
	default:
		return 0
	}
}

// onSegment reports whether collinear point q lies within the bounding box
// of segment pr.
func onSegment(p, q, r orb.Point) bool {
	return q.X() <= max(p.X(), r.X()) && q.X() >= min(p.X(), r.X()) &&
		q.Y() <= max(p.Y(), r.Y()) && q.Y() >= min(p.Y(), r.Y())
}
