package repository

import (
	"context"

	"bnghex/internal/domain/hexgrid"
)

// CellsRepository persists generated grids as named datasets of cells.
type CellsRepository interface {
	// SaveGrid stores every cell of the grid under a new dataset and
	// returns the dataset id.
	SaveGrid(ctx context.Context, name string, grid *hexgrid.Grid) (string, error)
	// ListCells returns the cells of a dataset in insertion order.
	ListCells(ctx context.Context, datasetID string) ([]*hexgrid.Cell, error)
}
