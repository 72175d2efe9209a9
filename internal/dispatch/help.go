package dispatch

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// HelpMarkdown describes every command as markdown
func HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# astrolab\n\n")
	b.WriteString("Manage laboratories, researchers, object types and the objects they observe.\n")

	for _, category := range Categories() {
		actions := ActionsFor(category)
		if category == CategoryHelp || category == CategoryQuit {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", strings.ToUpper(category.String()[:1])+category.String()[1:])
		for _, cmd := range actions {
			fmt.Fprintf(&b, "- `%s`: %s\n", cmd.Name(), cmd.Description())
		}
	}

	b.WriteString("\n## Updatable fields\n\n")
	for _, kind := range models.Kinds() {
		cols := make([]string, 0, 4)
		for _, f := range models.FieldsFor(kind) {
			cols = append(cols, "`"+f.Column()+"`")
		}
		fmt.Fprintf(&b, "- %s: %s\n", kind, strings.Join(cols, ", "))
	}

	fmt.Fprintf(&b, "\n## Search filters\n\nEnter `%s` to skip a filter. ", models.NoFilter)
	b.WriteString("Object and laboratory searches also skip empty filters; ")
	b.WriteString("the researcher search treats an empty level as a value that matches nobody.\n")
	return b.String()
}
