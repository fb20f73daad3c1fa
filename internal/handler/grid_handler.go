package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"bnghex/internal/domain/geometry"
	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/model"
	"bnghex/internal/repository"
	"bnghex/internal/usecase"
)

// GridHandler serves bulk grid generation and dataset export.
type GridHandler struct {
	indexing usecase.IndexingUseCase
}

func NewGridHandler(indexing usecase.IndexingUseCase) *GridHandler {
	return &GridHandler{indexing: indexing}
}

// GenerateGrid POST /grids - grid over an extent or polygonal geometry
func (h *GridHandler) GenerateGrid(c *gin.Context) {
	var req model.GenerateGridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	source, err := gridSourceFromRequest(&req)
	if err != nil {
		respondIndexError(c, err)
		return
	}

	grid, datasetID, err := h.indexing.GenerateGrid(c.Request.Context(), *req.Zoom, source, req.Persist, req.Name)
	if err != nil {
		respondIndexError(c, err)
		return
	}

	response := model.GenerateGridResponse{
		Zoom:      grid.Zoom(),
		CellCount: grid.Len(),
		DatasetID: datasetID,
	}
	if !req.Persist {
		response.Cells = model.NewCellResponses(grid.Cells())
	}
	c.JSON(http.StatusOK, response)
}

// ExportDatasetCSV GET /datasets/:id/cells.csv - tabular export of a
// persisted dataset
func (h *GridHandler) ExportDatasetCSV(c *gin.Context) {
	cells, err := h.indexing.DatasetCells(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to load dataset: " + err.Error(),
		})
		return
	}
	if len(cells) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Dataset has no cells",
		})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="cells.csv"`)
	if err := repository.WriteCSV(c.Writer, cells); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to write CSV: " + err.Error(),
		})
	}
}

// gridSourceFromRequest resolves the request's extent or geometry into a
// tagged grid source. Exactly one of the two must be present; geometry must
// parse to a polygon or multipolygon in BNG coordinates.
func gridSourceFromRequest(req *model.GenerateGridRequest) (hexgrid.GridSource, error) {
	hasExtent := req.Extent != nil
	hasGeometry := req.Geometry != ""

	if hasExtent == hasGeometry {
		return nil, fmt.Errorf("%w: exactly one of extent or geometry is required", hexgrid.ErrGeometryParse)
	}

	if hasExtent {
		e := *req.Extent
		return hexgrid.ExtentSource{MinX: e[0], MinY: e[1], MaxX: e[2], MaxY: e[3]}, nil
	}

	geom, err := geometry.Parse(req.Geometry)
	if err != nil {
		return nil, err
	}
	switch g := geom.(type) {
	case orb.Polygon:
		return hexgrid.PolygonSource{Polygon: g}, nil
	case orb.MultiPolygon:
		return hexgrid.MultiPolygonSource{MultiPolygon: g}, nil
	default:
		return nil, fmt.Errorf("%w: grid geometry must be a Polygon or MultiPolygon, got %T", hexgrid.ErrGeometryParse, geom)
	}
}
