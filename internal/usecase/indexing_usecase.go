package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"bnghex/internal/domain/geometry"
	"bnghex/internal/domain/hexgrid"
	"bnghex/internal/domain/repository"
	"bnghex/internal/domain/service"
)

type IndexingUseCase interface {
	// IndexCoordinate returns the cell containing one coordinate.
	IndexCoordinate(ctx context.Context, p orb.Point, zoom int, crs hexgrid.CRS) (*hexgrid.Cell, error)

	// IndexGeometryText parses WKT or GeoJSON text and returns the cells of
	// the parsed geometry.
	IndexGeometryText(ctx context.Context, text string, zoom int, crs hexgrid.CRS) ([]*hexgrid.Cell, error)

	// GenerateGrid builds the grid for a source and optionally persists it
	// as a named dataset, returning the dataset id when it does.
	GenerateGrid(ctx context.Context, zoom int, source hexgrid.GridSource, persist bool, name string) (*hexgrid.Grid, string, error)

	// DatasetCells loads the cells of a persisted dataset in order.
	DatasetCells(ctx context.Context, datasetID string) ([]*hexgrid.Cell, error)
}

type indexingUseCaseImpl struct {
	indexer *service.Indexer
	cells   repository.CellsRepository
}

// NewIndexingUseCase wires the indexer and the optional cells repository;
// pass nil when persistence is not configured.
func NewIndexingUseCase(indexer *service.Indexer, cells repository.CellsRepository) IndexingUseCase {
	return &indexingUseCaseImpl{indexer: indexer, cells: cells}
}

func (u *indexingUseCaseImpl) IndexCoordinate(_ context.Context, p orb.Point, zoom int, crs hexgrid.CRS) (*hexgrid.Cell, error) {
	return u.indexer.CellFromCoordinate(p, zoom, crs)
}

func (u *indexingUseCaseImpl) IndexGeometryText(_ context.Context, text string, zoom int, crs hexgrid.CRS) ([]*hexgrid.Cell, error) {
	geom, err := geometry.Parse(text)
	if err != nil {
		return nil, err
	}
	return u.indexer.CellsFromGeometry(geom, zoom, crs)
}

func (u *indexingUseCaseImpl) GenerateGrid(ctx context.Context, zoom int, source hexgrid.GridSource, persist bool, name string) (*hexgrid.Grid, string, error) {
	grid := hexgrid.NewGrid(zoom, source)
	log.Printf("generated grid: zoom=%d cells=%d", zoom, grid.Len())

	if !persist {
		return grid, "", nil
	}
	if u.cells == nil {
		return nil, "", fmt.Errorf("persistence requested but no cells repository is configured")
	}

	datasetID, err := u.cells.SaveGrid(ctx, name, grid)
	if err != nil {
		return nil, "", fmt.Errorf("persisting grid %q: %w", name, err)
	}
	log.Printf("persisted grid %q as dataset %s", name, datasetID)
	return grid, datasetID, nil
}

func (u *indexingUseCaseImpl) DatasetCells(ctx context.Context, datasetID string) ([]*hexgrid.Cell, error) {
	if u.cells == nil {
		return nil, fmt.Errorf("no cells repository is configured")
	}
	return u.cells.ListCells(ctx, datasetID)
}
