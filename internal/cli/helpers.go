package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// ResolveCommand maps a kind argument such as "labs" or "object_type" onto
// the command of category working on it
func ResolveCommand(category dispatch.Category, kindArg string) (dispatch.Command, error) {
	kind, err := models.ParseKind(kindArg)
	if err != nil {
		return 0, err
	}
	cmd, err := dispatch.CommandFor(category, kind)
	if err != nil {
		return 0, fmt.Errorf("%s does not support %s", category, kind.Plural())
	}
	return cmd, nil
}

// KindArgs lists the kind arguments accepted by category, for completion
func KindArgs(category dispatch.Category) []string {
	actions := dispatch.ActionsFor(category)
	out := make([]string, 0, len(actions))
	for _, cmd := range actions {
		if category == dispatch.CategoryRead || category == dispatch.CategorySearch {
			out = append(out, cmd.Kind().Plural())
			continue
		}
		out = append(out, cmd.Kind().String())
	}
	return out
}

// FieldNames lists the updatable columns of kind
func FieldNames(kind models.Kind) []string {
	fields := models.FieldsFor(kind)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Column()
	}
	return names
}

// FlagName turns a column name into a flag name: laboratory_id becomes laboratory-id
func FlagName(column string) string {
	return strings.ReplaceAll(column, "_", "-")
}
