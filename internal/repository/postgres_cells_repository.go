package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/paulmach/orb/encoding/wkt"

	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/repository"
	"bnghex/internal/infrastructure/database"
)

var _ repository.CellsRepository = (*PostgresCellsRepository)(nil)

type PostgresCellsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresCellsRepository(client *database.PostgreSQLClient) *PostgresCellsRepository {
	return &PostgresCellsRepository{
		client: client,
	}
}

// EnsureSchema creates the dataset tables if they do not exist yet.
func (r *PostgresCellsRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS hex_datasets (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			zoom_level SMALLINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS hex_cells (
			dataset_id UUID NOT NULL REFERENCES hex_datasets(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			cell_id TEXT NOT NULL,
			zoom_level SMALLINT NOT NULL,
			row_index BIGINT NOT NULL,
			col_index BIGINT NOT NULL,
			easting DOUBLE PRECISION NOT NULL,
			northing DOUBLE PRECISION NOT NULL,
			geometry TEXT NOT NULL,
			PRIMARY KEY (dataset_id, seq)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.client.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating cell dataset schema: %w", err)
		}
	}
	return nil
}

// SaveGrid stores every cell of the grid under a new dataset id, preserving
// generation order through the seq column.
func (r *PostgresCellsRepository) SaveGrid(ctx context.Context, name string, grid *hexgrid.Grid) (string, error) {
	datasetID := uuid.NewString()

	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("starting dataset transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hex_datasets (id, name, zoom_level) VALUES ($1, $2, $3)`,
		datasetID, name, grid.Zoom(),
	); err != nil {
		return "", fmt.Errorf("inserting dataset %s: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hex_cells
			(dataset_id, seq, cell_id, zoom_level, row_index, col_index, easting, northing, geometry)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	)
	if err != nil {
		return "", fmt.Errorf("preparing cell insert: %w", err)
	}
	defer stmt.Close()

	for seq, cell := range grid.Cells() {
		geometry := wkt.MarshalString(cell.ToPolygon())
		if _, err := stmt.ExecContext(ctx,
			datasetID, seq, cell.ID, cell.Zoom, cell.Row, cell.Col,
			cell.Easting(), cell.Northing(), geometry,
		); err != nil {
			return "", fmt.Errorf("inserting cell %s: %w", cell.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing dataset %s: %w", name, err)
	}
	return datasetID, nil
}

// ListCells returns the cells of a dataset in insertion order. Cells are
// rebuilt from their identifiers so the decoded center / (row, col)
// invariant holds for loaded cells exactly as for generated ones.
func (r *PostgresCellsRepository) ListCells(ctx context.Context, datasetID string) ([]*hexgrid.Cell, error) {
	rows, err := r.client.DB.QueryContext(ctx,
		`SELECT cell_id FROM hex_cells WHERE dataset_id = $1 ORDER BY seq`,
		datasetID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying dataset %s: %w", datasetID, err)
	}
	defer rows.Close()

	var cells []*hexgrid.Cell
	for rows.Next() {
		var cellID string
		if err := rows.Scan(&cellID); err != nil {
			return nil, fmt.Errorf("scanning cell row: %w", err)
		}
		cell, err := hexgrid.CellFromIdentifier(cellID)
		if err != nil {
			return nil, fmt.Errorf("rebuilding cell %s: %w", cellID, err)
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset %s: %w", datasetID, err)
	}
	return cells, nil
}
