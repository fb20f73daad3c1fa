package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb/encoding/wkt"

	"bnghex/internal/domain/hexgrid"
)

// CellColumns is the columnar form of an ordered cell sequence. Every column
// has one entry per cell, aligned by index; geometry is the hexagon boundary
// as WKT.
type CellColumns struct {
	IDs        []string
	Zooms      []int
	Rows       []int64
	Cols       []int64
	Eastings   []float64
	Northings  []float64
	Geometries []string
}

// ColumnsFromCells converts cells to column arrays, preserving order.
func ColumnsFromCells(cells []*hexgrid.Cell) *CellColumns {
	n := len(cells)
	columns := &CellColumns{
		IDs:        make([]string, n),
		Zooms:      make([]int, n),
		Rows:       make([]int64, n),
		Cols:       make([]int64, n),
		Eastings:   make([]float64, n),
		Northings:  make([]float64, n),
		Geometries: make([]string, n),
	}

	for i, cell := range cells {
		columns.IDs[i] = cell.ID
		columns.Zooms[i] = cell.Zoom
		columns.Rows[i] = cell.Row
		columns.Cols[i] = cell.Col
		columns.Eastings[i] = cell.Easting()
		columns.Northings[i] = cell.Northing()
		columns.Geometries[i] = wkt.MarshalString(cell.ToPolygon())
	}
	return columns
}

// Len returns the number of rows in the columns.
func (c *CellColumns) Len() int {
	return len(c.IDs)
}

// csvHeader is the stable per-cell field set of the tabular export.
var csvHeader = []string{"id", "zoom", "row", "col", "easting", "northing", "geometry"}

// WriteCSV writes the cells as CSV with one row per cell, in order.
func WriteCSV(w io.Writer, cells []*hexgrid.Cell) error {
	columns := ColumnsFromCells(cells)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for i := 0; i < columns.Len(); i++ {
		record := []string{
			columns.IDs[i],
			strconv.Itoa(columns.Zooms[i]),
			strconv.FormatInt(columns.Rows[i], 10),
			strconv.FormatInt(columns.Cols[i], 10),
			strconv.FormatFloat(columns.Eastings[i], 'f', -1, 64),
			strconv.FormatFloat(columns.Northings[i], 'f', -1, 64),
			columns.Geometries[i],
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
