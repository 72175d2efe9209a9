package database

import (
	"context"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// LaboratoryRepository covers laboratory rows
type LaboratoryRepository interface {
	CreateLaboratory(ctx context.Context, name string) (int64, error)
	ListLaboratories(ctx context.Context) ([]models.Laboratory, error)
	GenerateLaboratories(ctx context.Context, n int) (int64, error)
}

// ResearcherRepository covers researcher rows
type ResearcherRepository interface {
	CreateResearcher(ctx context.Context, fullName string, level models.Level, laboratoryID int64) (int64, error)
	ListResearchers(ctx context.Context) ([]models.Researcher, error)
	GenerateResearchers(ctx context.Context, n int) (int64, error)
}

// ObjectTypeRepository covers object_type rows
type ObjectTypeRepository interface {
	CreateObjectType(ctx context.Context, typeName, galaxyLocation string) (int64, error)
	ListObjectTypes(ctx context.Context) ([]models.ObjectType, error)
	GenerateObjectTypes(ctx context.Context, n int) (int64, error)
}

// ObjectRepository covers object rows
type ObjectRepository interface {
	CreateObject(ctx context.Context, name string, distance, laboratoryID, typeID int64) (int64, error)
	ListObjects(ctx context.Context) ([]models.Object, error)
	GenerateObjects(ctx context.Context, n int) (int64, error)
}

// Searcher runs the filtered search queries
type Searcher interface {
	SearchResearchers(ctx context.Context, labPattern, level string) (SearchResult[models.Researcher], error)
	SearchObjects(ctx context.Context, labPattern, typePattern string) (SearchResult[models.Object], error)
	SearchLabs(ctx context.Context, researcherPattern, level, objectPattern string) (SearchResult[models.Laboratory], error)
}
