package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewOutputFormatter(jsonOutput, quiet, &out, &errOut, config.MonochromeColorScheme()), &out, &errOut
}

func readResult() dispatch.Result {
	return dispatch.Result{
		Command: dispatch.CmdReadLaboratories,
		Outcome: dispatch.OutcomeOK,
		Headers: models.Headers(models.KindLaboratory),
		Rows:    [][]string{{"1", "AAA-L"}, {"2", "BBB-O"}},
		Elapsed: 2 * time.Millisecond,
	}
}

// ============================================================================
// Result Tests
// ============================================================================

func TestResultHumanTable(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	require.NoError(t, f.Result(readResult()))
	assert.Contains(t, out.String(), "LABORATORIES")
	assert.Contains(t, out.String(), "BBB-O")
	assert.Contains(t, out.String(), "[TIME] Query executed in 2.00 ms")
}

func TestResultJSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Result(readResult()))

	var got struct {
		Success bool `json:"success"`
		Data    struct {
			Command   string  `json:"command"`
			Outcome   string  `json:"outcome"`
			ElapsedMS float64 `json:"elapsed_ms"`
			Result    struct {
				Headers []string   `json:"headers"`
				Rows    [][]string `json:"rows"`
			} `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "read/laboratories", got.Data.Command)
	assert.Equal(t, "ok", got.Data.Outcome)
	assert.InDelta(t, 2.0, got.Data.ElapsedMS, 0.001)
	assert.Equal(t, []string{"id", "lab_name"}, got.Data.Result.Headers)
	assert.Len(t, got.Data.Result.Rows, 2)
}

func TestResultQuiet(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	require.NoError(t, f.Result(readResult()))
	assert.Equal(t, "1\n2\n", out.String())

	f, out, _ = newTestFormatter(false, true)
	require.NoError(t, f.Result(dispatch.Result{Command: dispatch.CmdCreateObject, Outcome: dispatch.OutcomeOK, ID: 17, Affected: 1}))
	assert.Equal(t, "17\n", out.String())

	f, out, _ = newTestFormatter(false, true)
	require.NoError(t, f.Result(dispatch.Result{Command: dispatch.CmdDeleteObject, Outcome: dispatch.OutcomeOK, Affected: 1}))
	assert.Empty(t, out.String())
}

func TestResultErrors(t *testing.T) {
	notFound := dispatch.Result{
		Command: dispatch.CmdDeleteResearcher,
		Outcome: dispatch.OutcomeNotFound,
		Message: "No researcher with id=8, nothing was deleted",
	}

	f, out, errOut := newTestFormatter(false, false)
	require.NoError(t, f.Result(notFound))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: No researcher with id=8")
	assert.Contains(t, errOut.String(), "astrolab read researchers")

	f, out, _ = newTestFormatter(true, false)
	require.NoError(t, f.Result(dispatch.Result{
		Command: dispatch.CmdUpdateResearcher,
		Outcome: dispatch.OutcomeRejected,
		Err:     models.ErrInvalidField,
		Message: "field is not updatable: id",
	}))

	var got struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, "VALIDATION_ERROR", got.Error.Code)
	assert.Equal(t, "Updatable fields: full_name, level, laboratory_id", got.Error.Suggestion)
}

func TestSuccessFallsBackToPlainPrint(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	require.NoError(t, f.Success(map[string]int{"laboratory": 3}))
	assert.True(t, strings.HasPrefix(out.String(), "map[laboratory:3]"))
}
