package repository

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnghex/internal/domain/hexgrid"
)

func TestColumnsFromCells(t *testing.T) {
	grid := hexgrid.GridFromExtent(457000.0, 339500.0, 458000.0, 340500.0, 10)
	require.False(t, grid.IsEmpty())

	columns := ColumnsFromCells(grid.Cells())

	require.Equal(t, grid.Len(), columns.Len())
	require.Len(t, columns.Zooms, columns.Len())
	require.Len(t, columns.Rows, columns.Len())
	require.Len(t, columns.Cols, columns.Len())
	require.Len(t, columns.Eastings, columns.Len())
	require.Len(t, columns.Northings, columns.Len())
	require.Len(t, columns.Geometries, columns.Len())

	for i, cell := range grid.Cells() {
		assert.Equal(t, cell.ID, columns.IDs[i])
		assert.Equal(t, cell.Zoom, columns.Zooms[i])
		assert.Equal(t, cell.Row, columns.Rows[i])
		assert.Equal(t, cell.Col, columns.Cols[i])
		assert.True(t, strings.HasPrefix(columns.Geometries[i], "POLYGON"))
	}
}

func TestColumnsFromCellsEmpty(t *testing.T) {
	columns := ColumnsFromCells(nil)
	assert.Zero(t, columns.Len())
}

func TestWriteCSV(t *testing.T) {
	grid := hexgrid.GridFromExtent(457000.0, 339500.0, 458000.0, 340500.0, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, grid.Cells()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, grid.Len()+1)

	assert.Equal(t, []string{"id", "zoom", "row", "col", "easting", "northing", "geometry"}, records[0])

	for i, cell := range grid.Cells() {
		row := records[i+1]
		assert.Equal(t, cell.ID, row[0])
		assert.Equal(t, "10", row[1])
	}
}
