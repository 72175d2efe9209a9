package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Args are the raw values collected by the prompt layer for one command.
// Which fields are read depends on the command's category.
type Args struct {
	// Values are the create arguments, in models.CreateFields order
	Values []string
	// ID selects the row for update and delete
	ID string
	// Field and Value describe an update
	Field string
	Value string
	// Count is the number of rows to generate
	Count int
	// Filters are the search filter values, in Command.SearchFilters order.
	// Missing values mean "no filter".
	Filters []string
}

func parseInt(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", models.ErrMalformedArgument, name, raw)
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	return parseInt("id", raw)
}

// fieldValue converts a raw update value to the field's type
func fieldValue(field models.Field, raw string) (any, error) {
	if field.ValueType() == models.ValueInt {
		return parseInt(field.Column(), raw)
	}
	return raw, nil
}

// filter returns filter i or the "no filter" sentinel when absent
func (a Args) filter(i int) string {
	if i < len(a.Filters) {
		return a.Filters[i]
	}
	return models.NoFilter
}

// createValues checks the create arguments of kind. Integer columns are
// parsed, text is passed through.
func createValues(kind models.Kind, values []string) ([]any, error) {
	fields := models.CreateFields(kind)
	if len(values) != len(fields) {
		return nil, fmt.Errorf("%w: %s takes %d values, got %d",
			models.ErrMalformedArgument, kind, len(fields), len(values))
	}

	out := make([]any, len(fields))
	for i, f := range fields {
		v, err := fieldValue(f, values[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
