package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/model"
	"bnghex/internal/domain/service"
	"bnghex/internal/usecase"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	indexing := usecase.NewIndexingUseCase(service.NewIndexer(nil), nil)
	cellsHandler := NewCellsHandler(indexing)
	gridHandler := NewGridHandler(indexing)

	router := gin.New()
	router.POST("/cells", cellsHandler.IndexCoordinate)
	router.GET("/cells/:id", cellsHandler.DecodeCell)
	router.POST("/cells/geometry", cellsHandler.IndexGeometry)
	router.POST("/grids", gridHandler.GenerateGrid)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndexCoordinateEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/cells",
		`{"x": 383640.0, "y": 398260.0, "zoom": 12, "crs": "bng"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	direct, err := hexgrid.NewCell(orb.Point{383640.0, 398260.0}, 12)
	require.NoError(t, err)
	assert.Equal(t, direct.ID, resp.ID)
	assert.Equal(t, 12, resp.Zoom)
}

func TestIndexCoordinateEndpointInvalidZoom(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/cells",
		`{"x": 383640.0, "y": 398260.0, "zoom": 20}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_zoom_level")
}

func TestIndexCoordinateEndpointMissingZoom(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/cells", `{"x": 1.0, "y": 2.0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeCellEndpoint(t *testing.T) {
	router := newTestRouter()

	cell, err := hexgrid.NewCell(orb.Point{457500.0, 340000.0}, 10)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "/cells/"+cell.ID, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, cell.ID, resp.ID)
	assert.Equal(t, cell.Row, resp.Row)
	assert.Equal(t, cell.Col, resp.Col)
}

func TestDecodeCellEndpointCorrupted(t *testing.T) {
	router := newTestRouter()

	req, err := http.NewRequest(http.MethodGet, "/cells/AAAAAAAAAAAAAAAAAAAAAAAAAA", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIndexGeometryEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/cells/geometry",
		`{"geometry": "LINESTRING(530000 180000, 531000 181000)", "zoom": 12, "crs": "bng"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CellCount int                  `json:"cell_count"`
		Cells     []model.CellResponse `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.CellCount, 1)
	assert.Len(t, resp.Cells, resp.CellCount)
}

func TestIndexGeometryEndpointMalformed(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/cells/geometry",
		`{"geometry": "NOT A GEOMETRY", "zoom": 12}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_geometry")
}

func TestGenerateGridEndpointExtent(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/grids",
		`{"zoom": 10, "extent": [457000, 339500, 458000, 340500]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.GenerateGridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Zoom)
	assert.Positive(t, resp.CellCount)
	assert.Len(t, resp.Cells, resp.CellCount)
	assert.Empty(t, resp.DatasetID)
}

func TestGenerateGridEndpointPolygon(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/grids",
		`{"zoom": 10, "geometry": "POLYGON((457000 339500, 458000 339500, 457500 340500, 457000 339500))"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.GenerateGridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.CellCount)
}

func TestGenerateGridEndpointRequiresOneSource(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/grids", `{"zoom": 10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/grids",
		`{"zoom": 10, "extent": [0, 0, 1, 1], "geometry": "POINT(0 0)"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateGridEndpointPersistUnconfigured(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/grids",
		`{"zoom": 10, "extent": [457000, 339500, 458000, 340500], "persist": true, "name": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
