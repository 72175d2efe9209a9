package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/astrolab/internal/models"
)

var (
	generatedName    = regexp.MustCompile(`^[A-Z]{5}$`)
	generatedLabName = regexp.MustCompile(`^[A-Z]{3}-[A-Z]$`)
)

func TestGenerateObjectTypesAddsExactlyN(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	mustCreateType(t, repo, "Existing", "Halo")

	inserted, err := repo.GenerateObjectTypes(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(25), inserted)
	assert.Equal(t, 26, countRows(t, repo, "object_type"))

	types, err := repo.ListObjectTypes(ctx)
	require.NoError(t, err)
	for _, ot := range types[1:] {
		assert.Regexp(t, generatedName, ot.Type)
		assert.Regexp(t, generatedName, ot.GalaxyLocation)
	}
}

func TestGenerateLaboratoriesNeverDuplicatesNames(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	// Enough candidates that collisions within one batch are likely
	inserted, err := repo.GenerateLaboratories(ctx, 3000)
	require.NoError(t, err)
	assert.Positive(t, inserted)
	assert.LessOrEqual(t, inserted, int64(3000))

	more, err := repo.GenerateLaboratories(ctx, 3000)
	require.NoError(t, err)

	labs, err := repo.ListLaboratories(ctx)
	require.NoError(t, err)
	assert.Len(t, labs, int(inserted+more))

	seen := make(map[string]bool, len(labs))
	for _, lab := range labs {
		assert.Regexp(t, generatedLabName, lab.Name)
		assert.Falsef(t, seen[lab.Name], "duplicate laboratory name %q", lab.Name)
		seen[lab.Name] = true
	}
}

func TestGenerateLaboratoriesUsesKnownSuffixes(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GenerateLaboratories(context.Background(), 50)
	require.NoError(t, err)

	labs, err := repo.ListLaboratories(context.Background())
	require.NoError(t, err)
	for _, lab := range labs {
		suffix := lab.Name[len(lab.Name)-1:]
		assert.Contains(t, models.LabSuffixes, suffix)
	}
}

func TestGenerateResearchersWithoutLaboratories(t *testing.T) {
	repo := setupTestRepo(t)

	inserted, err := repo.GenerateResearchers(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Equal(t, 0, countRows(t, repo, "researcher"))
}

func TestGenerateResearchersAttachToExistingLabs(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	labA := mustCreateLab(t, repo, "A")
	labB := mustCreateLab(t, repo, "B")

	inserted, err := repo.GenerateResearchers(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(40), inserted)

	researchers, err := repo.ListResearchers(ctx)
	require.NoError(t, err)
	require.Len(t, researchers, 40)
	for _, r := range researchers {
		assert.Regexp(t, generatedName, r.FullName)
		assert.True(t, r.Level.IsKnown(), "unexpected level %q", r.Level)
		assert.Contains(t, []int64{labA, labB}, r.LaboratoryID)
	}
}

func TestGenerateObjectsNeedsLabsAndTypes(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	inserted, err := repo.GenerateObjects(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	mustCreateLab(t, repo, "Lab")
	inserted, err = repo.GenerateObjects(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, inserted, "no object types yet")
	assert.Equal(t, 0, countRows(t, repo, "object"))
}

func TestGenerateObjectsDistanceRange(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	labID := mustCreateLab(t, repo, "Lab")
	typeID := mustCreateType(t, repo, "Quasar", "Far")

	inserted, err := repo.GenerateObjects(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(200), inserted)

	objects, err := repo.ListObjects(ctx)
	require.NoError(t, err)
	for _, o := range objects {
		assert.Regexp(t, generatedName, o.Name)
		assert.GreaterOrEqual(t, o.Distance, int64(models.MinGeneratedDistance))
		assert.LessOrEqual(t, o.Distance, int64(models.MaxGeneratedDistance))
		assert.Equal(t, labID, o.LaboratoryID)
		assert.Equal(t, typeID, o.TypeID)
	}
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	repo := setupTestRepo(t)
	mustCreateLab(t, repo, "Lab")

	for _, kind := range models.Kinds() {
		for _, n := range []int{0, -3} {
			inserted, err := repo.Generate(context.Background(), kind, n)
			assert.ErrorIs(t, err, models.ErrInvalidCount)
			assert.Zero(t, inserted)
		}
	}

	_, err := repo.Generate(context.Background(), models.Kind(0), 1)
	assert.ErrorIs(t, err, models.ErrUnknownEntity)
}

func TestGeneratorIsReproducibleWithSeed(t *testing.T) {
	first := setupTestRepo(t)
	second := setupTestRepo(t)

	_, err := first.GenerateLaboratories(context.Background(), 20)
	require.NoError(t, err)
	_, err = second.GenerateLaboratories(context.Background(), 20)
	require.NoError(t, err)

	a, err := first.ListLaboratories(context.Background())
	require.NoError(t, err)
	b, err := second.ListLaboratories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
