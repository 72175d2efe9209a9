package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes the entity repositories using struct embedding and owns the
// connection: Close releases it.
type Repository struct {
	*LaboratoryRepo
	*ResearcherRepo
	*ObjectTypeRepo
	*ObjectRepo

	s *store
}

// Option customizes a Repository
type Option func(*repoOptions)

type repoOptions struct {
	rng *rand.Rand
}

// WithRand makes bulk generation draw from rng, which tests seed for
// reproducible data
func WithRand(rng *rand.Rand) Option {
	return func(o *repoOptions) {
		o.rng = rng
	}
}

// NewRepository creates a new Repository wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect, opts ...Option) *Repository {
	var o repoOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &store{db: db, dialect: dialect}
	gen := NewGenerator(o.rng)
	return &Repository{
		LaboratoryRepo: &LaboratoryRepo{s: s, gen: gen},
		ResearcherRepo: &ResearcherRepo{s: s, gen: gen},
		ObjectTypeRepo: &ObjectTypeRepo{s: s, gen: gen},
		ObjectRepo:     &ObjectRepo{s: s, gen: gen},
		s:              s,
	}
}

// Dialect returns the engine dialect the repository speaks
func (r *Repository) Dialect() Dialect {
	return r.s.dialect
}

// Close releases the database connection
func (r *Repository) Close() error {
	return r.s.db.Close()
}

// Wrapper methods for the entity repositories to keep one flat API

func (r *Repository) CreateLaboratory(ctx context.Context, name string) (int64, error) {
	return r.LaboratoryRepo.Create(ctx, name)
}

func (r *Repository) CreateResearcher(ctx context.Context, fullName string, level models.Level, laboratoryID int64) (int64, error) {
	return r.ResearcherRepo.Create(ctx, fullName, level, laboratoryID)
}

func (r *Repository) CreateObjectType(ctx context.Context, typeName, galaxyLocation string) (int64, error) {
	return r.ObjectTypeRepo.Create(ctx, typeName, galaxyLocation)
}

func (r *Repository) CreateObject(ctx context.Context, name string, distance, laboratoryID, typeID int64) (int64, error) {
	return r.ObjectRepo.Create(ctx, name, distance, laboratoryID, typeID)
}

func (r *Repository) ListLaboratories(ctx context.Context) ([]models.Laboratory, error) {
	return r.LaboratoryRepo.List(ctx)
}

func (r *Repository) ListResearchers(ctx context.Context) ([]models.Researcher, error) {
	return r.ResearcherRepo.List(ctx)
}

func (r *Repository) ListObjectTypes(ctx context.Context) ([]models.ObjectType, error) {
	return r.ObjectTypeRepo.List(ctx)
}

func (r *Repository) ListObjects(ctx context.Context) ([]models.Object, error) {
	return r.ObjectRepo.List(ctx)
}

func (r *Repository) GenerateLaboratories(ctx context.Context, n int) (int64, error) {
	return r.LaboratoryRepo.Generate(ctx, n)
}

func (r *Repository) GenerateResearchers(ctx context.Context, n int) (int64, error) {
	return r.ResearcherRepo.Generate(ctx, n)
}

func (r *Repository) GenerateObjectTypes(ctx context.Context, n int) (int64, error) {
	return r.ObjectTypeRepo.Generate(ctx, n)
}

func (r *Repository) GenerateObjects(ctx context.Context, n int) (int64, error) {
	return r.ObjectRepo.Generate(ctx, n)
}

// Kind-generic operations

// Read returns every row of kind as display records. Researcher and object
// rows carry the names of the rows they reference.
func (r *Repository) Read(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	switch kind {
	case models.KindLaboratory:
		rows, err := r.ListLaboratories(ctx)
		return models.ToRecords(rows), err
	case models.KindResearcher:
		rows, err := r.ListResearchers(ctx)
		return models.ToRecords(rows), err
	case models.KindObjectType:
		rows, err := r.ListObjectTypes(ctx)
		return models.ToRecords(rows), err
	case models.KindObject:
		rows, err := r.ListObjects(ctx)
		return models.ToRecords(rows), err
	}
	return nil, fmt.Errorf("%w: %s", models.ErrUnknownEntity, kind)
}

// Generate dispatches bulk generation by kind
func (r *Repository) Generate(ctx context.Context, kind models.Kind, n int) (int64, error) {
	switch kind {
	case models.KindLaboratory:
		return r.GenerateLaboratories(ctx, n)
	case models.KindResearcher:
		return r.GenerateResearchers(ctx, n)
	case models.KindObjectType:
		return r.GenerateObjectTypes(ctx, n)
	case models.KindObject:
		return r.GenerateObjects(ctx, n)
	}
	return 0, fmt.Errorf("%w: %s", models.ErrUnknownEntity, kind)
}

// UpdateField sets one allow-listed column of the row with id. It returns 0
// when no such row exists. value must be a string for text fields and an
// integer for numeric ones.
func (r *Repository) UpdateField(ctx context.Context, field models.Field, id int64, value any) (int64, error) {
	if !field.Allowed() {
		return 0, fmt.Errorf("%w: %s", models.ErrInvalidField, field)
	}

	arg, err := fieldValue(field, value)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", field.Kind().Table(), field.Column())
	return r.s.exec(ctx, "update "+field.String(), query, arg, id)
}

// Delete removes the row with id and returns the number of rows removed.
// Deleting a laboratory or object type that is still referenced fails with
// models.ErrConstraintViolation.
func (r *Repository) Delete(ctx context.Context, kind models.Kind, id int64) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownEntity, kind)
	}
	return r.s.exec(ctx, "delete "+kind.Table(), fmt.Sprintf("DELETE FROM %s WHERE id = ?", kind.Table()), id)
}

// Count returns the number of rows of kind
func (r *Repository) Count(ctx context.Context, kind models.Kind) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", models.ErrUnknownEntity, kind)
	}

	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", kind.Table())
	if err := r.s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, r.s.fail("count "+kind.Table(), err)
	}
	return n, nil
}

func fieldValue(field models.Field, value any) (any, error) {
	switch field.ValueType() {
	case models.ValueInt:
		switch v := value.(type) {
		case int64:
			return v, nil
		case int:
			return int64(v), nil
		}
	case models.ValueText:
		switch v := value.(type) {
		case string:
			return v, nil
		case models.Level:
			return string(v), nil
		}
	}
	return nil, fmt.Errorf("%w: %T is not a valid value for %s", models.ErrMalformedArgument, value, field)
}
