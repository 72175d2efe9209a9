package console

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// Renderer prints dispatch results to a terminal
type Renderer struct {
	out    io.Writer
	styles Styles
	help   *HelpRenderer
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, styles Styles, help *HelpRenderer) *Renderer {
	return &Renderer{out: out, styles: styles, help: help}
}

// Present implements dispatch.Presenter
func (r *Renderer) Present(res dispatch.Result) {
	fmt.Fprintln(r.out, r.Render(res))
}

// Render returns the text shown for a result
func (r *Renderer) Render(res dispatch.Result) string {
	if res.Command == dispatch.CmdHelp && res.OK() {
		return r.help.Render(res.Message)
	}

	var b strings.Builder
	if res.HasTable() {
		title := res.Command.Kind().Plural()
		b.WriteString(r.styles.Title.Render(strings.ToUpper(title)))
		b.WriteString("\n")
		if len(res.Rows) > 0 {
			b.WriteString(r.Table(res.Headers, res.Rows))
			b.WriteString("\n")
		}
		if res.Message != "" {
			b.WriteString(r.styles.Info.Render("[INFO] " + res.Message))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s",
			r.styles.Subtitle.Render(fmt.Sprintf("%d rows", len(res.Rows))),
			r.styles.Subtitle.Render(fmt.Sprintf("[TIME] Query executed in %.2f ms", res.ElapsedMillis())))
		return b.String()
	}

	return r.Status(res)
}

// Status renders the one line outcome of a command without rows
func (r *Renderer) Status(res dispatch.Result) string {
	switch res.Outcome {
	case dispatch.OutcomeOK:
		return r.styles.Success.Render("[SUCCESS] ") + r.styles.Value.Render(res.Message)
	case dispatch.OutcomeNotFound:
		return r.styles.Info.Render("[INFO] " + res.Message)
	case dispatch.OutcomeRejected:
		return r.styles.Warning.Render("[REJECTED] ") + r.styles.Value.Render("Incorrect input: "+res.Message)
	default:
		return r.styles.Error.Render("[ERROR] ") + r.styles.Value.Render(res.Message)
	}
}

// Table renders rows under headers with alternating row colors
func (r *Renderer) Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case row%2 == 0:
				return r.styles.EvenRow
			default:
				return r.styles.OddRow
			}
		})
	return t.String()
}
