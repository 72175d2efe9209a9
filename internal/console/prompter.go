// Package console is the interactive front end: huh menus for input,
// lipgloss tables and glamour help for output.
package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

type runFunc func(ctx context.Context, form *huh.Form) error

// Prompter implements dispatch.Prompter with huh forms
type Prompter struct {
	theme  huh.Theme
	keymap *huh.KeyMap
	run    runFunc
}

// NewPrompter creates a prompter styled and bound by cfg
func NewPrompter(cfg *config.Config) *Prompter {
	return &Prompter{
		theme:  NewTheme(cfg.ColorScheme),
		keymap: NewKeyMap(cfg.KeyMappings),
		run: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}
}

func (p *Prompter) form(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(p.theme).
		WithKeyMap(p.keymap)
}

// abortAs maps a user abort (or a cancelled context) onto target
func abortAs(err, target error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return target
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// SelectCategory shows the main menu. Aborting it quits.
func (p *Prompter) SelectCategory(ctx context.Context) (dispatch.Category, error) {
	var category dispatch.Category
	options := make([]huh.Option[dispatch.Category], 0, len(dispatch.Categories()))
	for _, c := range dispatch.Categories() {
		options = append(options, huh.NewOption(title(c.String()), c))
	}

	err := p.run(ctx, p.form(
		huh.NewSelect[dispatch.Category]().
			Title("What do you want to do?").
			Options(options...).
			Value(&category),
	))
	return category, abortAs(err, dispatch.ErrQuit)
}

// SelectCommand shows the actions of a category. Aborting returns to the main menu.
func (p *Prompter) SelectCommand(ctx context.Context, category dispatch.Category) (dispatch.Command, error) {
	var cmd dispatch.Command
	actions := dispatch.ActionsFor(category)
	options := make([]huh.Option[dispatch.Command], 0, len(actions))
	for _, a := range actions {
		options = append(options, huh.NewOption(a.Name(), a))
	}

	err := p.run(ctx, p.form(
		huh.NewSelect[dispatch.Command]().
			Title(title(category.String())).
			Options(options...).
			Value(&cmd),
	))
	return cmd, abortAs(err, dispatch.ErrBack)
}

// CollectArgs asks for the arguments cmd needs. Commands without arguments
// return immediately.
func (p *Prompter) CollectArgs(ctx context.Context, cmd dispatch.Command) (dispatch.Args, error) {
	values := newArgValues(cmd)
	fields := argFields(cmd, values)
	if len(fields) == 0 {
		return dispatch.Args{}, nil
	}

	if err := p.run(ctx, p.form(fields...)); err != nil {
		return dispatch.Args{}, abortAs(err, dispatch.ErrBack)
	}
	return values.args(), nil
}

// argValues are the form bindings of one command
type argValues struct {
	values  []string
	id      string
	field   string
	value   string
	count   string
	filters []string
}

func newArgValues(cmd dispatch.Command) *argValues {
	v := &argValues{}
	switch cmd.Category() {
	case dispatch.CategoryCreate:
		v.values = make([]string, len(models.CreateFields(cmd.Kind())))
	case dispatch.CategorySearch:
		v.filters = make([]string, len(cmd.SearchFilters()))
		for i := range v.filters {
			v.filters[i] = models.NoFilter
		}
	}
	return v
}

func (v *argValues) args() dispatch.Args {
	count, _ := strconv.Atoi(strings.TrimSpace(v.count))
	return dispatch.Args{
		Values:  v.values,
		ID:      strings.TrimSpace(v.id),
		Field:   v.field,
		Value:   v.value,
		Count:   count,
		Filters: v.filters,
	}
}

// argFields builds the inputs for cmd bound to v
func argFields(cmd dispatch.Command, v *argValues) []huh.Field {
	kind := cmd.Kind()
	switch cmd.Category() {
	case dispatch.CategoryCreate:
		fields := make([]huh.Field, 0, len(v.values))
		for i, f := range models.CreateFields(kind) {
			if f == models.FieldResearcherLevel {
				fields = append(fields, levelSelect(&v.values[i]))
				continue
			}
			fields = append(fields, columnInput(f, &v.values[i]))
		}
		return fields

	case dispatch.CategoryUpdate:
		options := make([]huh.Option[string], 0, 4)
		for _, f := range models.FieldsFor(kind) {
			options = append(options, huh.NewOption(f.Column(), f.Column()))
		}
		return []huh.Field{
			idInput(kind, &v.id),
			huh.NewSelect[string]().
				Title("Field to change").
				Options(options...).
				Value(&v.field),
			huh.NewInput().
				Title("New value").
				Value(&v.value),
		}

	case dispatch.CategoryDelete:
		return []huh.Field{idInput(kind, &v.id)}

	case dispatch.CategoryGenerate:
		return []huh.Field{
			huh.NewInput().
				Title("How many " + kind.Plural() + "?").
				Placeholder("1000").
				Validate(validateCount).
				Value(&v.count),
		}

	case dispatch.CategorySearch:
		names := cmd.SearchFilters()
		fields := make([]huh.Field, 0, len(names))
		for i, name := range names {
			fields = append(fields, huh.NewInput().
				Title(name).
				Description(fmt.Sprintf("%q for no filter", models.NoFilter)).
				Value(&v.filters[i]))
		}
		return fields
	}
	return nil
}

func columnInput(f models.Field, value *string) *huh.Input {
	input := huh.NewInput().
		Title(f.Column()).
		Value(value)
	if f.ValueType() == models.ValueInt {
		input = input.Placeholder("integer")
	}
	return input
}

func levelSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(models.Levels()))
	for _, l := range models.Levels() {
		options = append(options, huh.NewOption(string(l), string(l)))
	}
	return huh.NewSelect[string]().
		Title("level").
		Options(options...).
		Value(value)
}

func idInput(kind models.Kind, value *string) *huh.Input {
	return huh.NewInput().
		Title(kind.String() + " id").
		Value(value)
}

// validateCount accepts positive integers only
func validateCount(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
