package hexgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// CRS identifies the coordinate reference system of an input coordinate.
type CRS int

const (
	// CRSBNG is the British National Grid projected system (EPSG:27700).
	CRSBNG CRS = iota
	// CRSWGS84 is the geographic longitude/latitude system (EPSG:4326).
	CRSWGS84
)

func (c CRS) String() string {
	switch c {
	case CRSBNG:
		return "bng"
	case CRSWGS84:
		return "wgs84"
	default:
		return fmt.Sprintf("crs(%d)", int(c))
	}
}

// ParseCRS resolves a CRS from its string form ("bng" or "wgs84").
func ParseCRS(s string) (CRS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bng", "epsg:27700":
		return CRSBNG, nil
	case "wgs84", "epsg:4326":
		return CRSWGS84, nil
	default:
		return CRSBNG, fmt.Errorf("unknown crs %q", s)
	}
}

// Cell is a single hexagonal cell of the index: the encoded identifier, the
// snapped center in BNG coordinates, the zoom level, and the discrete grid
// address. Cells are built once and never mutated.
//
// The identifier always encodes the snapped center, so decoding it yields a
// point that re-indexes to the same (row, col) at the same zoom, whichever
// constructor produced the cell.
type Cell struct {
	ID     string
	Center orb.Point
	Zoom   int
	Row    int64
	Col    int64
}

func newCell(id string, center orb.Point, zoom int, row, col int64) *Cell {
	return &Cell{ID: id, Center: center, Zoom: zoom, Row: row, Col: col}
}

// NewCell builds the cell containing the given BNG coordinate at the given
// zoom level.
func NewCell(p orb.Point, zoom int) (*Cell, error) {
	row, col, err := PointToCell(p, zoom)
	if err != nil {
		return nil, err
	}
	center, err := CellToPoint(row, col, zoom)
	if err != nil {
		return nil, err
	}

	id := EncodeIdentifier(center.X(), center.Y(), zoom)
	return newCell(id, center, zoom, row, col), nil
}

// CellFromIdentifier rebuilds a cell from its encoded identifier,
// propagating any codec error.
func CellFromIdentifier(id string) (*Cell, error) {
	decoded, err := DecodeIdentifier(id)
	if err != nil {
		return nil, err
	}

	center := orb.Point{decoded.Easting, decoded.Northing}
	row, col, err := PointToCell(center, decoded.Zoom)
	if err != nil {
		return nil, err
	}
	return newCell(id, center, decoded.Zoom, row, col), nil
}

// CellsFromLineString samples a BNG line string and returns every distinct
// cell the samples fall in, in first-encounter order.
//
// Each segment is walked at steps of half the cell radius, so the sampling
// density is bounded by the cell size. This is a heuristic, not an exact
// line-lattice intersection: a sliver crossed entirely between two samples
// can be missed.
func CellsFromLineString(line orb.LineString, zoom int) ([]*Cell, error) {
	if zoom < 0 || zoom > MaxZoomLevel {
		return nil, &InvalidZoomLevelError{Zoom: zoom}
	}

	radius := CellRadius[zoom]
	stepSize := radius * 0.5

	totalLength := 0.0
	for i := 0; i+1 < len(line); i++ {
		dx := line[i+1].X() - line[i].X()
		dy := line[i+1].Y() - line[i].Y()
		totalLength += math.Sqrt(dx*dx + dy*dy)
	}
	estimated := int(totalLength/radius*1.5) + len(line)

	seen := make(map[[2]int64]struct{}, estimated)
	cells := make([]*Cell, 0, estimated)

	for i := 0; i+1 < len(line); i++ {
		start, end := line[i], line[i+1]
		dx := end.X() - start.X()
		dy := end.Y() - start.Y()
		segmentLength := math.Sqrt(dx*dx + dy*dy)
		steps := int(math.Ceil(segmentLength / stepSize))

		for s := 0; s <= steps; s++ {
			t := 0.0
			if steps > 0 {
				t = float64(s) / float64(steps)
			}
			p := orb.Point{start.X() + t*dx, start.Y() + t*dy}

			row, col, err := PointToCell(p, zoom)
			if err != nil {
				return nil, err
			}

			key := [2]int64{row, col}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			center, err := CellToPoint(row, col, zoom)
			if err != nil {
				return nil, err
			}
			id := EncodeIdentifier(center.X(), center.Y(), zoom)
			cells = append(cells, newCell(id, center, zoom, row, col))
		}
	}

	return cells, nil
}

// Easting returns the x-coordinate of the cell center in meters.
func (c *Cell) Easting() float64 {
	return c.Center.X()
}

// Northing returns the y-coordinate of the cell center in meters.
func (c *Cell) Northing() float64 {
	return c.Center.Y()
}

// ToPolygon returns the hexagon boundary of the cell, using the circumradius
// of the cell's zoom level.
func (c *Cell) ToPolygon() orb.Polygon {
	return Hexagon(c.Center, CellRadius[c.Zoom])
}
