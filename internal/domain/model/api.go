package model

import "bnghex/internal/domain/hexgrid"

// CellResponse is the JSON shape of a single cell.
type CellResponse struct {
	ID       string  `json:"id"`
	Zoom     int     `json:"zoom"`
	Row      int64   `json:"row"`
	Col      int64   `json:"col"`
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

// NewCellResponse converts a cell.
func NewCellResponse(cell *hexgrid.Cell) CellResponse {
	return CellResponse{
		ID:       cell.ID,
		Zoom:     cell.Zoom,
		Row:      cell.Row,
		Col:      cell.Col,
		Easting:  cell.Easting(),
		Northing: cell.Northing(),
	}
}

// NewCellResponses converts an ordered cell sequence.
func NewCellResponses(cells []*hexgrid.Cell) []CellResponse {
	responses := make([]CellResponse, len(cells))
	for i, cell := range cells {
		responses[i] = NewCellResponse(cell)
	}
	return responses
}

// IndexCoordinateRequest asks for the cell containing one coordinate.
// X/Y are easting/northing for CRS "bng", longitude/latitude for "wgs84".
type IndexCoordinateRequest struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom *int    `json:"zoom" binding:"required"`
	CRS  string  `json:"crs"`
}

// IndexGeometryRequest asks for the cells of a WKT or GeoJSON geometry.
type IndexGeometryRequest struct {
	Geometry string `json:"geometry" binding:"required"`
	Zoom     *int   `json:"zoom" binding:"required"`
	CRS      string `json:"crs"`
}

// GenerateGridRequest asks for a bulk grid over an extent or a polygonal
// geometry, optionally persisted as a named dataset.
type GenerateGridRequest struct {
	Zoom     *int        `json:"zoom" binding:"required"`
	Extent   *[4]float64 `json:"extent"`
	Geometry string      `json:"geometry"`
	Persist  bool        `json:"persist"`
	Name     string      `json:"name"`
}

// GenerateGridResponse reports the generated grid and, when persisted, the
// dataset id.
type GenerateGridResponse struct {
	Zoom      int            `json:"zoom"`
	CellCount int            `json:"cell_count"`
	DatasetID string         `json:"dataset_id,omitempty"`
	Cells     []CellResponse `json:"cells,omitempty"`
}
