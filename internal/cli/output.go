package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/console"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// helpWidth is the wrap width of markdown help outside the interactive session
const helpWidth = 100

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to the process streams
	Out io.Writer
	Err io.Writer

	renderer *console.Renderer
}

// NewOutputFormatter creates a formatter writing to out and errOut. Human
// output is styled with colors.
func NewOutputFormatter(jsonOutput, quiet bool, out, errOut io.Writer, colors config.ColorScheme) *OutputFormatter {
	return &OutputFormatter{
		JSON:     jsonOutput,
		Quiet:    quiet,
		Out:      out,
		Err:      errOut,
		renderer: console.NewRenderer(out, console.NewStyles(colors), console.NewHelpRenderer(helpWidth)),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Result outputs a dispatch result in the selected mode
func (f *OutputFormatter) Result(res dispatch.Result) error {
	if !res.OK() {
		return f.ErrorWithSuggestion(errorCode(res.Outcome), res.Message, suggestionFor(res))
	}

	if f.Quiet && !f.JSON {
		return f.quiet(res)
	}

	if f.JSON {
		return f.Success(map[string]any{
			"command":    res.Command.String(),
			"outcome":    res.Outcome.String(),
			"elapsed_ms": res.ElapsedMillis(),
			"result":     res,
		})
	}

	_, err := fmt.Fprintln(f.out(), f.human().Render(res))
	return err
}

// Table renders a plain table in the human-readable style
func (f *OutputFormatter) Table(headers []string, rows [][]string) string {
	return f.human().Table(headers, rows)
}

// human returns the renderer, defaulting the colors of a zero formatter
func (f *OutputFormatter) human() *console.Renderer {
	if f.renderer == nil {
		f.renderer = console.NewRenderer(f.out(), console.NewStyles(config.DefaultColorScheme()), console.NewHelpRenderer(helpWidth))
	}
	return f.renderer
}

// quiet prints only ids: the created row's id, or the first column of each row
func (f *OutputFormatter) quiet(res dispatch.Result) error {
	if res.HasTable() {
		for _, row := range res.Rows {
			if len(row) == 0 {
				continue
			}
			if _, err := fmt.Fprintln(f.out(), row[0]); err != nil {
				return err
			}
		}
		return nil
	}
	return f.Success(res)
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet && !f.JSON {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int64 }); ok {
			if id := idGetter.GetID(); id > 0 {
				_, err := fmt.Fprintf(f.out(), "%d\n", id)
				return err
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

func errorCode(outcome dispatch.Outcome) string {
	switch outcome {
	case dispatch.OutcomeNotFound:
		return "NOT_FOUND"
	case dispatch.OutcomeRejected:
		return "VALIDATION_ERROR"
	default:
		return "STORAGE_ERROR"
	}
}

func suggestionFor(res dispatch.Result) string {
	switch {
	case res.Outcome == dispatch.OutcomeNotFound:
		return "List existing rows with: astrolab read " + res.Command.Kind().Plural()
	case res.Is(models.ErrInvalidField):
		return "Updatable fields: " + strings.Join(FieldNames(res.Command.Kind()), ", ")
	}
	return ""
}
