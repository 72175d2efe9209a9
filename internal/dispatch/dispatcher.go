package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/astrolab/internal/database"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// Recorder observes every dispatched command
type Recorder interface {
	Observe(category, action, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string, string, time.Duration) {}

// Dispatcher executes fully specified commands against a data store.
// It never returns an error: every failure becomes a Result outcome.
type Dispatcher struct {
	store    database.DataStore
	recorder Recorder
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithRecorder reports each command to r
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.recorder = r
		}
	}
}

// New creates a dispatcher over store
func New(store database.DataStore, opts ...Option) *Dispatcher {
	d := &Dispatcher{store: store, recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Store returns the data store the dispatcher runs against
func (d *Dispatcher) Store() database.DataStore {
	return d.store
}

// Dispatch runs cmd with args and reports the outcome
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command, args Args) Result {
	start := time.Now()

	var res Result
	if !cmd.Valid() {
		res = failure(fmt.Errorf("%w: %s", models.ErrUnknownEntity, cmd))
	} else {
		res = d.run(ctx, cmd, args)
	}
	res.Command = cmd

	d.recorder.Observe(cmd.Category().String(), cmd.Name(), res.Outcome.String(), time.Since(start))

	switch res.Outcome {
	case OutcomeRejected:
		slog.Warn("command rejected", "command", cmd.String(), "error", res.Err)
	case OutcomeFailed:
		slog.Error("command failed", "command", cmd.String(), "error", res.Err)
	default:
		slog.Info("command dispatched", "command", cmd.String(), "outcome", res.Outcome.String(), "affected", res.Affected)
	}
	return res
}

func (d *Dispatcher) run(ctx context.Context, cmd Command, args Args) Result {
	kind := cmd.Kind()
	switch cmd.Category() {
	case CategoryCreate:
		return d.create(ctx, kind, args)
	case CategoryRead:
		return d.read(ctx, kind)
	case CategoryUpdate:
		return d.update(ctx, kind, args)
	case CategoryDelete:
		return d.delete(ctx, kind, args)
	case CategoryGenerate:
		return d.generate(ctx, kind, args)
	case CategorySearch:
		return d.search(ctx, cmd, args)
	case CategoryHelp:
		return Result{Outcome: OutcomeOK, Message: HelpMarkdown()}
	case CategoryQuit:
		return Result{Outcome: OutcomeOK, Message: "Goodbye"}
	}
	return failure(fmt.Errorf("%w: %s", models.ErrUnknownEntity, cmd))
}

// failure turns err into a Rejected or Failed result
func failure(err error) Result {
	return Result{Outcome: OutcomeOf(err), Err: err, Message: err.Error()}
}

func (d *Dispatcher) create(ctx context.Context, kind models.Kind, args Args) Result {
	values, err := createValues(kind, args.Values)
	if err != nil {
		return failure(err)
	}

	var id int64
	switch kind {
	case models.KindLaboratory:
		id, err = d.store.CreateLaboratory(ctx, values[0].(string))
	case models.KindResearcher:
		id, err = d.store.CreateResearcher(ctx, values[0].(string), models.Level(values[1].(string)), values[2].(int64))
	case models.KindObjectType:
		id, err = d.store.CreateObjectType(ctx, values[0].(string), values[1].(string))
	case models.KindObject:
		id, err = d.store.CreateObject(ctx, values[0].(string), values[1].(int64), values[2].(int64), values[3].(int64))
	}
	if err != nil {
		return failure(err)
	}

	return Result{
		Outcome:  OutcomeOK,
		Affected: 1,
		ID:       id,
		Message:  fmt.Sprintf("Created %s id=%d", kind, id),
	}
}

func (d *Dispatcher) read(ctx context.Context, kind models.Kind) Result {
	start := time.Now()
	records, err := d.store.Read(ctx, kind)
	elapsed := time.Since(start)
	if err != nil {
		return failure(err)
	}

	headers, rows := tableOf(kind, records)
	return Result{
		Outcome:  OutcomeOK,
		Affected: int64(len(rows)),
		Headers:  headers,
		Rows:     rows,
		Elapsed:  elapsed,
	}
}

func (d *Dispatcher) update(ctx context.Context, kind models.Kind, args Args) Result {
	id, err := parseID(args.ID)
	if err != nil {
		return failure(err)
	}
	field, err := models.ParseField(kind, args.Field)
	if err != nil {
		return failure(err)
	}
	value, err := fieldValue(field, args.Value)
	if err != nil {
		return failure(err)
	}

	affected, err := d.store.UpdateField(ctx, field, id, value)
	if err != nil {
		return failure(err)
	}
	if affected == 0 {
		return Result{
			Outcome: OutcomeNotFound,
			Message: fmt.Sprintf("No %s with id=%d, nothing was updated", kind, id),
		}
	}
	return Result{
		Outcome:  OutcomeOK,
		Affected: affected,
		ID:       id,
		Message:  fmt.Sprintf("Updated %s id=%d: set %s = %v", kind, id, field.Column(), value),
	}
}

func (d *Dispatcher) delete(ctx context.Context, kind models.Kind, args Args) Result {
	id, err := parseID(args.ID)
	if err != nil {
		return failure(err)
	}

	affected, err := d.store.Delete(ctx, kind, id)
	if err != nil {
		return failure(err)
	}
	if affected == 0 {
		return Result{
			Outcome: OutcomeNotFound,
			Message: fmt.Sprintf("No %s with id=%d, nothing was deleted", kind, id),
		}
	}
	return Result{
		Outcome:  OutcomeOK,
		Affected: affected,
		ID:       id,
		Message:  fmt.Sprintf("Deleted %s id=%d", kind, id),
	}
}

func (d *Dispatcher) generate(ctx context.Context, kind models.Kind, args Args) Result {
	inserted, err := d.store.Generate(ctx, kind, args.Count)
	if err != nil {
		return failure(err)
	}

	msg := fmt.Sprintf("Generated %d of %d %s", inserted, args.Count, kind.Plural())
	if inserted == 0 {
		switch kind {
		case models.KindResearcher:
			msg += " (no laboratories exist)"
		case models.KindObject:
			msg += " (laboratories and object types are required)"
		}
	}
	return Result{Outcome: OutcomeOK, Affected: inserted, Message: msg}
}

func (d *Dispatcher) search(ctx context.Context, cmd Command, args Args) Result {
	var (
		records []models.Record
		elapsed time.Duration
		err     error
	)
	switch cmd {
	case CmdSearchResearchers:
		var r database.SearchResult[models.Researcher]
		r, err = d.store.SearchResearchers(ctx, args.filter(0), args.filter(1))
		records, elapsed = r.Records(), r.Elapsed
	case CmdSearchObjects:
		var r database.SearchResult[models.Object]
		r, err = d.store.SearchObjects(ctx, args.filter(0), args.filter(1))
		records, elapsed = r.Records(), r.Elapsed
	case CmdSearchLabs:
		var r database.SearchResult[models.Laboratory]
		r, err = d.store.SearchLabs(ctx, args.filter(0), args.filter(1), args.filter(2))
		records, elapsed = r.Records(), r.Elapsed
	}
	if err != nil {
		return failure(err)
	}

	headers, rows := tableOf(cmd.Kind(), records)
	res := Result{
		Outcome:  OutcomeOK,
		Affected: int64(len(rows)),
		Headers:  headers,
		Rows:     rows,
		Elapsed:  elapsed,
	}
	if len(rows) == 0 && cmd == CmdSearchLabs {
		res.Message = "No labs match your filters"
	}
	return res
}
