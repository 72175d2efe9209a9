package dispatch

import (
	"errors"
	"time"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Outcome classifies how a dispatched command ended
type Outcome int

const (
	// OutcomeOK means the command ran
	OutcomeOK Outcome = iota
	// OutcomeNotFound means an update or delete matched no row
	OutcomeNotFound
	// OutcomeRejected means the input was refused: unknown field, malformed
	// argument, value too long, constraint violation or bad count
	OutcomeRejected
	// OutcomeFailed means an unexpected storage error
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// OutcomeOf classifies an error returned by the data access layer
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case models.IsRejectedInput(err):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// Result is what the presentation layer receives for every command
type Result struct {
	Command  Command       `json:"-"`
	Outcome  Outcome       `json:"-"`
	Affected int64         `json:"affected"`
	ID       int64         `json:"id,omitempty"`
	Headers  []string      `json:"headers,omitempty"`
	Rows     [][]string    `json:"rows,omitempty"`
	Elapsed  time.Duration `json:"-"`
	Message  string        `json:"message,omitempty"`
	Err      error         `json:"-"`
}

// GetID returns the id of a created row
func (r Result) GetID() int64 { return r.ID }

// OK reports whether the command succeeded
func (r Result) OK() bool { return r.Outcome == OutcomeOK }

// HasTable reports whether the result carries rows to render
func (r Result) HasTable() bool {
	switch r.Command.Category() {
	case CategoryRead, CategorySearch:
		return r.Outcome == OutcomeOK
	}
	return false
}

// ElapsedMillis returns the query time in fractional milliseconds
func (r Result) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Is reports whether the result failed with target
func (r Result) Is(target error) bool {
	return r.Err != nil && errors.Is(r.Err, target)
}

func tableOf(kind models.Kind, records []models.Record) ([]string, [][]string) {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Cells()
	}
	return models.Headers(kind), rows
}
