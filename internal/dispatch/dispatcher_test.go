package dispatch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/astrolab/internal/models"
	"github.com/thenoetrevino/astrolab/internal/testutil"
)

type observation struct {
	category, action, outcome string
}

type fakeRecorder struct {
	seen []observation
}

func (r *fakeRecorder) Observe(category, action, outcome string, _ time.Duration) {
	r.seen = append(r.seen, observation{category, action, outcome})
}

func setupDispatcher(t *testing.T) (*Dispatcher, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	return New(testutil.SetupTestRepo(t), WithRecorder(rec)), rec
}

func TestCommandTable(t *testing.T) {
	assert.Len(t, Commands(), 25)
	for _, cmd := range Commands() {
		assert.True(t, cmd.Valid())
		assert.NotEmpty(t, cmd.Name(), cmd.String())
		assert.NotEmpty(t, cmd.Description(), cmd.String())
	}

	assert.Equal(t,
		[]Command{CmdSearchResearchers, CmdSearchObjects, CmdSearchLabs},
		ActionsFor(CategorySearch))

	cmd, err := ParseCommand(CategoryGenerate, "generate_labs")
	require.NoError(t, err)
	assert.Equal(t, CmdGenerateLaboratories, cmd)

	cmd, err = ParseCommand(CategoryRead, " Object_Types ")
	require.NoError(t, err)
	assert.Equal(t, CmdReadObjectTypes, cmd)

	_, err = ParseCommand(CategoryRead, "object_type")
	assert.Error(t, err, "read actions are plural")

	category, err := ParseCategory("Search")
	require.NoError(t, err)
	assert.Equal(t, CategorySearch, category)

	cmd, err = CommandFor(CategoryDelete, models.KindObjectType)
	require.NoError(t, err)
	assert.Equal(t, CmdDeleteObjectType, cmd)

	_, err = CommandFor(CategorySearch, models.KindObjectType)
	assert.ErrorIs(t, err, models.ErrUnknownEntity, "object types have no search")
}

func TestDispatchCreateAndRead(t *testing.T) {
	d, rec := setupDispatcher(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, CmdCreateLaboratory, Args{Values: []string{"AAA-L"}})
	require.Equal(t, OutcomeOK, res.Outcome, res.Message)
	labID := res.ID

	res = d.Dispatch(ctx, CmdCreateObjectType, Args{Values: []string{"BBBBB", "CCCCC"}})
	require.Equal(t, OutcomeOK, res.Outcome, res.Message)

	res = d.Dispatch(ctx, CmdCreateObject, Args{Values: []string{"DDDDD", "42", "1", "1"}})
	require.Equal(t, OutcomeOK, res.Outcome, res.Message)
	assert.Equal(t, int64(1), res.Affected)

	res = d.Dispatch(ctx, CmdCreateResearcher, Args{Values: []string{"Vera Rubin", "Lead", "1"}})
	require.Equal(t, OutcomeOK, res.Outcome, res.Message)

	res = d.Dispatch(ctx, CmdReadObjects, Args{})
	require.Equal(t, OutcomeOK, res.Outcome)
	assert.True(t, res.HasTable())
	assert.Equal(t, models.Headers(models.KindObject), res.Headers)
	assert.Equal(t, [][]string{{"1", "DDDDD", "42", "AAA-L", "BBBBB", "CCCCC"}}, res.Rows)

	res = d.Dispatch(ctx, CmdReadResearchers, Args{})
	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, [][]string{{"1", "Vera Rubin", "Lead", "AAA-L"}}, res.Rows)

	assert.Equal(t, int64(1), labID)
	assert.Equal(t, observation{"create", "laboratory", "ok"}, rec.seen[0])
	assert.Equal(t, observation{"read", "researchers", "ok"}, rec.seen[len(rec.seen)-1])
}

func TestDispatchRejectsMalformedArguments(t *testing.T) {
	d, rec := setupDispatcher(t)
	ctx := context.Background()
	d.Dispatch(ctx, CmdCreateLaboratory, Args{Values: []string{"Lab"}})
	d.Dispatch(ctx, CmdCreateObjectType, Args{Values: []string{"Star", "Disk"}})

	tests := []struct {
		name string
		cmd  Command
		args Args
		want error
	}{
		{"distance not a number", CmdCreateObject, Args{Values: []string{"X", "far", "1", "1"}}, models.ErrMalformedArgument},
		{"wrong arity", CmdCreateObjectType, Args{Values: []string{"only one"}}, models.ErrMalformedArgument},
		{"id not a number", CmdDeleteLaboratory, Args{ID: "one"}, models.ErrMalformedArgument},
		{"unknown field", CmdUpdateLaboratory, Args{ID: "1", Field: "id", Value: "2"}, models.ErrInvalidField},
		{"int field with text", CmdUpdateObject, Args{ID: "1", Field: "distance", Value: "x"}, models.ErrMalformedArgument},
		{"too long", CmdCreateLaboratory, Args{Values: []string{strings.Repeat("x", 51)}}, models.ErrValueTooLong},
		{"missing parent", CmdCreateResearcher, Args{Values: []string{"Ann", "Junior", "99"}}, models.ErrConstraintViolation},
		{"zero count", CmdGenerateObjectTypes, Args{Count: 0}, models.ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Dispatch(ctx, tt.cmd, tt.args)
			assert.Equal(t, OutcomeRejected, res.Outcome)
			assert.True(t, res.Is(tt.want), "got %v", res.Err)
			assert.NotEmpty(t, res.Message)
		})
	}

	labs := d.Dispatch(ctx, CmdReadLaboratories, Args{})
	assert.Len(t, labs.Rows, 1, "rejected commands leave storage unchanged")
	assert.Equal(t, "rejected", rec.seen[2].outcome)
}

func TestDispatchUpdateAndDelete(t *testing.T) {
	d, _ := setupDispatcher(t)
	ctx := context.Background()
	d.Dispatch(ctx, CmdCreateLaboratory, Args{Values: []string{"Lab"}})

	res := d.Dispatch(ctx, CmdUpdateLaboratory, Args{ID: "1", Field: "lab_name", Value: "Renamed"})
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, "Updated laboratory id=1: set lab_name = Renamed", res.Message)

	res = d.Dispatch(ctx, CmdUpdateLaboratory, Args{ID: "7", Field: "lab_name", Value: "Nope"})
	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.Zero(t, res.Affected)
	assert.Nil(t, res.Err)

	res = d.Dispatch(ctx, CmdDeleteLaboratory, Args{ID: "1"})
	assert.Equal(t, OutcomeOK, res.Outcome)

	res = d.Dispatch(ctx, CmdDeleteLaboratory, Args{ID: "1"})
	assert.Equal(t, OutcomeNotFound, res.Outcome)
}

func TestDispatchDeleteReferencedLabIsRejected(t *testing.T) {
	d, _ := setupDispatcher(t)
	ctx := context.Background()
	d.Dispatch(ctx, CmdCreateLaboratory, Args{Values: []string{"Lab"}})
	d.Dispatch(ctx, CmdCreateResearcher, Args{Values: []string{"Ann", "Senior", "1"}})

	res := d.Dispatch(ctx, CmdDeleteLaboratory, Args{ID: "1"})
	assert.Equal(t, OutcomeRejected, res.Outcome)
	assert.True(t, res.Is(models.ErrConstraintViolation))

	labs := d.Dispatch(ctx, CmdReadLaboratories, Args{})
	assert.Len(t, labs.Rows, 1)
}

func TestDispatchGenerate(t *testing.T) {
	d, _ := setupDispatcher(t)
	ctx := context.Background()

	res := d.Dispatch(ctx, CmdGenerateResearchers, Args{Count: 5})
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Zero(t, res.Affected)
	assert.Contains(t, res.Message, "no laboratories exist")

	res = d.Dispatch(ctx, CmdGenerateLaboratories, Args{Count: 5})
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Positive(t, res.Affected)

	res = d.Dispatch(ctx, CmdGenerateResearchers, Args{Count: 5})
	assert.Equal(t, int64(5), res.Affected)
	assert.Equal(t, "Generated 5 of 5 researchers", res.Message)
}

func TestDispatchSearch(t *testing.T) {
	d, _ := setupDispatcher(t)
	ctx := context.Background()
	d.Dispatch(ctx, CmdCreateLaboratory, Args{Values: []string{"AAA-L"}})
	d.Dispatch(ctx, CmdCreateObjectType, Args{Values: []string{"BBBBB", "CCCCC"}})
	d.Dispatch(ctx, CmdCreateObject, Args{Values: []string{"DDDDD", "42", "1", "1"}})

	res := d.Dispatch(ctx, CmdSearchObjects, Args{Filters: []string{"AAA", "BBB"}})
	require.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, [][]string{{"1", "DDDDD", "42", "AAA-L", "BBBBB", "CCCCC"}}, res.Rows)
	assert.GreaterOrEqual(t, res.ElapsedMillis(), 0.0)

	res = d.Dispatch(ctx, CmdSearchResearchers, Args{})
	assert.Equal(t, OutcomeOK, res.Outcome, "missing filters mean no filter")
	assert.Empty(t, res.Rows)

	res = d.Dispatch(ctx, CmdSearchLabs, Args{Filters: []string{"Nobody"}})
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Empty(t, res.Rows)
	assert.Equal(t, "No labs match your filters", res.Message)
	assert.Equal(t, []string{"id", "lab_name"}, res.Headers)
}

func TestDispatchStorageFailure(t *testing.T) {
	repo := testutil.SetupTestRepo(t)
	d := New(repo)
	require.NoError(t, repo.Close())

	res := d.Dispatch(context.Background(), CmdReadLaboratories, Args{})
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, res.Is(models.ErrStorage))
	assert.Empty(t, res.Rows)
	assert.False(t, res.HasTable())
}

func TestDispatchHelpAndUnknown(t *testing.T) {
	d, _ := setupDispatcher(t)

	res := d.Dispatch(context.Background(), CmdHelp, Args{})
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Contains(t, res.Message, "`search_labs`")
	assert.Contains(t, res.Message, "`laboratory_id`")

	res = d.Dispatch(context.Background(), Command(99), Args{})
	assert.Equal(t, OutcomeRejected, res.Outcome)
}
