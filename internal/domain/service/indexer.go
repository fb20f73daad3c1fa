package service

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/repository"
)

// Indexer assigns coordinates and geometries to hexagonal cells, converting
// WGS84 input through an explicitly owned geodesy provider.
type Indexer struct {
	geodesy repository.GeodesyProvider
}

// NewIndexer creates an Indexer. The provider may be nil if every input is
// already in BNG coordinates.
func NewIndexer(geodesy repository.GeodesyProvider) *Indexer {
	return &Indexer{geodesy: geodesy}
}

// CellFromCoordinate builds the cell containing the coordinate at the given
// zoom level, converting from WGS84 first when the CRS says so.
func (ix *Indexer) CellFromCoordinate(p orb.Point, zoom int, crs hexgrid.CRS) (*hexgrid.Cell, error) {
	projected, err := ix.toProjected(p, crs)
	if err != nil {
		return nil, err
	}
	return hexgrid.NewCell(projected, zoom)
}

// CellsFromLineString samples the line into cells, converting each vertex
// from WGS84 first when the CRS says so.
func (ix *Indexer) CellsFromLineString(line orb.LineString, zoom int, crs hexgrid.CRS) ([]*hexgrid.Cell, error) {
	projected, err := ix.projectLine(line, crs)
	if err != nil {
		return nil, err
	}
	return hexgrid.CellsFromLineString(projected, zoom)
}

// CellsFromGeometry dispatches on geometry type: points index directly,
// lines are sampled, polygons contribute their centroid cell (a degenerate
// polygon contributes nothing), and collections recurse. Unsupported
// geometry kinds fail with a geometry parse error.
func (ix *Indexer) CellsFromGeometry(g orb.Geometry, zoom int, crs hexgrid.CRS) ([]*hexgrid.Cell, error) {
	switch geom := g.(type) {
	case orb.Point:
		cell, err := ix.CellFromCoordinate(geom, zoom, crs)
		if err != nil {
			return nil, err
		}
		return []*hexgrid.Cell{cell}, nil

	case orb.MultiPoint:
		cells := make([]*hexgrid.Cell, 0, len(geom))
		for _, p := range geom {
			cell, err := ix.CellFromCoordinate(p, zoom, crs)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		return cells, nil

	case orb.LineString:
		return ix.CellsFromLineString(geom, zoom, crs)

	case orb.MultiLineString:
		var cells []*hexgrid.Cell
		for _, line := range geom {
			lineCells, err := ix.CellsFromLineString(line, zoom, crs)
			if err != nil {
				return nil, err
			}
			cells = append(cells, lineCells...)
		}
		return cells, nil

	case orb.Polygon:
		return ix.centroidCell(geom, zoom, crs)

	case orb.MultiPolygon:
		var cells []*hexgrid.Cell
		for _, poly := range geom {
			polyCells, err := ix.centroidCell(poly, zoom, crs)
			if err != nil {
				return nil, err
			}
			cells = append(cells, polyCells...)
		}
		return cells, nil

	case orb.Collection:
		var cells []*hexgrid.Cell
		for _, member := range geom {
			memberCells, err := ix.CellsFromGeometry(member, zoom, crs)
			if err != nil {
				return nil, err
			}
			cells = append(cells, memberCells...)
		}
		return cells, nil

	default:
		return nil, fmt.Errorf("%w: unsupported geometry type %T", hexgrid.ErrGeometryParse, g)
	}
}

// centroidCell returns the single cell of the polygon's centroid, or no
// cells when the polygon has no area.
func (ix *Indexer) centroidCell(poly orb.Polygon, zoom int, crs hexgrid.CRS) ([]*hexgrid.Cell, error) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return nil, nil
	}

	centroid, area := planar.CentroidArea(poly)
	if area == 0 {
		return nil, nil
	}

	cell, err := ix.CellFromCoordinate(centroid, zoom, crs)
	if err != nil {
		return nil, err
	}
	return []*hexgrid.Cell{cell}, nil
}

func (ix *Indexer) toProjected(p orb.Point, crs hexgrid.CRS) (orb.Point, error) {
	if crs == hexgrid.CRSBNG {
		return p, nil
	}
	if ix.geodesy == nil {
		return orb.Point{}, fmt.Errorf("%w: no geodesy provider configured", hexgrid.ErrProjection)
	}

	easting, northing, err := ix.geodesy.ToProjected(p.Lon(), p.Lat())
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{easting, northing}, nil
}

func (ix *Indexer) projectLine(line orb.LineString, crs hexgrid.CRS) (orb.LineString, error) {
	if crs == hexgrid.CRSBNG {
		return line, nil
	}

	projected := make(orb.LineString, len(line))
	for i, p := range line {
		pp, err := ix.toProjected(p, crs)
		if err != nil {
			return nil, err
		}
		projected[i] = pp
	}
	return projected, nil
}
