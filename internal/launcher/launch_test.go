package launcher

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// answer is one full pass through the menus
type answer struct {
	category dispatch.Category
	cmd      dispatch.Command
	args     dispatch.Args
}

type scriptedPrompter struct {
	answers []answer
	pos     int
}

func (p *scriptedPrompter) SelectCategory(context.Context) (dispatch.Category, error) {
	if p.pos >= len(p.answers) {
		return 0, dispatch.ErrQuit
	}
	a := p.answers[p.pos]
	if a.category == dispatch.CategoryQuit || a.category == dispatch.CategoryHelp {
		p.pos++
	}
	return a.category, nil
}

func (p *scriptedPrompter) SelectCommand(context.Context, dispatch.Category) (dispatch.Command, error) {
	return p.answers[p.pos].cmd, nil
}

func (p *scriptedPrompter) CollectArgs(context.Context, dispatch.Command) (dispatch.Args, error) {
	a := p.answers[p.pos]
	p.pos++
	return a.args, nil
}

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	require.NoError(t, cfg.OverrideDatabase("sqlite", ":memory:"))
	return cfg
}

func TestLaunchRunsSessionUntilQuit(t *testing.T) {
	var out bytes.Buffer
	prompter := &scriptedPrompter{answers: []answer{
		{category: dispatch.CategoryCreate, cmd: dispatch.CmdCreateLaboratory, args: dispatch.Args{Values: []string{"AAA-L"}}},
		{category: dispatch.CategoryRead, cmd: dispatch.CmdReadLaboratories},
		{category: dispatch.CategoryDelete, cmd: dispatch.CmdDeleteLaboratory, args: dispatch.Args{ID: "42"}},
		{category: dispatch.CategoryQuit},
	}}

	err := launch(context.Background(), memoryConfig(t), prompter, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[SUCCESS]")
	assert.Contains(t, text, "AAA-L")
	assert.Contains(t, text, "No laboratory with id=42")
	assert.Contains(t, text, "Goodbye")
}

func TestLaunchFailsWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := launch(ctx, memoryConfig(t), &scriptedPrompter{}, &out)
	assert.Error(t, err, "the database cannot be opened with a cancelled context")
}

func TestLaunchReportsDatabaseErrors(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Database.Driver = "oracle"

	err := launch(context.Background(), cfg, &scriptedPrompter{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to initialize database")
}
