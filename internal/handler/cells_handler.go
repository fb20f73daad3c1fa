package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/model"
	"bnghex/internal/usecase"
)

// CellsHandler serves cell indexing and identifier decoding.
type CellsHandler struct {
	indexing usecase.IndexingUseCase
}

func NewCellsHandler(indexing usecase.IndexingUseCase) *CellsHandler {
	return &CellsHandler{indexing: indexing}
}

// IndexCoordinate POST /cells - cell containing one coordinate
func (h *CellsHandler) IndexCoordinate(c *gin.Context) {
	var req model.IndexCoordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	crs, err := hexgrid.ParseCRS(req.CRS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
		return
	}

	cell, err := h.indexing.IndexCoordinate(c.Request.Context(), orb.Point{req.X, req.Y}, *req.Zoom, crs)
	if err != nil {
		respondIndexError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewCellResponse(cell))
}

// DecodeCell GET /cells/:id - rebuild a cell from its identifier
func (h *CellsHandler) DecodeCell(c *gin.Context) {
	cell, err := hexgrid.CellFromIdentifier(c.Param("id"))
	if err != nil {
		respondIndexError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewCellResponse(cell))
}

// IndexGeometry POST /cells/geometry - cells of a WKT/GeoJSON geometry
func (h *CellsHandler) IndexGeometry(c *gin.Context) {
	var req model.IndexGeometryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	crs, err := hexgrid.ParseCRS(req.CRS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
		return
	}

	cells, err := h.indexing.IndexGeometryText(c.Request.Context(), req.Geometry, *req.Zoom, crs)
	if err != nil {
		respondIndexError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cell_count": len(cells),
		"cells":      model.NewCellResponses(cells),
	})
}

// respondIndexError maps the domain error taxonomy to HTTP error codes, so
// API callers can tell corruption from version skew from bad input.
func respondIndexError(c *gin.Context, err error) {
	var zoomErr *hexgrid.InvalidZoomLevelError
	var versionErr *hexgrid.UnsupportedVersionError

	switch {
	case errors.As(err, &zoomErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_zoom_level", "message": err.Error()})
	case errors.As(err, &versionErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_version", "message": err.Error()})
	case errors.Is(err, hexgrid.ErrInvalidChecksum):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_checksum", "message": err.Error()})
	case errors.Is(err, hexgrid.ErrInvalidIdentifierLength):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_identifier_length", "message": err.Error()})
	case errors.Is(err, hexgrid.ErrBase64Decode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_identifier", "message": err.Error()})
	case errors.Is(err, hexgrid.ErrGeometryParse):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_geometry", "message": err.Error()})
	case errors.Is(err, hexgrid.ErrProjection):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "projection_failed", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error", "message": err.Error()})
	}
}
