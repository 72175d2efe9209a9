package database

import (
	"context"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the dispatcher. It is composed of the smaller per-entity interfaces so
// consumers can depend on only what they use.
type DataStore interface {
	LaboratoryRepository
	ResearcherRepository
	ObjectTypeRepository
	ObjectRepository
	Searcher

	Read(ctx context.Context, kind models.Kind) ([]models.Record, error)
	Generate(ctx context.Context, kind models.Kind, n int) (int64, error)
	UpdateField(ctx context.Context, field models.Field, id int64, value any) (int64, error)
	Delete(ctx context.Context, kind models.Kind, id int64) (int64, error)
	Count(ctx context.Context, kind models.Kind) (int, error)
	Dialect() Dialect
	Close() error
}

var _ DataStore = (*Repository)(nil)
