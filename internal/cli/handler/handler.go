// Package handler turns cobra commands into dispatcher calls
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// Handler builds the dispatcher call of one command run
type Handler interface {
	// Build resolves the command and its arguments from the parsed flags
	Build(ctx context.Context, args *Arguments) (dispatch.Command, dispatch.Args, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (dispatch.Command, dispatch.Args, error)

// Build calls f
func (f HandlerFunc) Build(ctx context.Context, args *Arguments) (dispatch.Command, dispatch.Args, error) {
	return f(ctx, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Command wraps common command execution logic:
// it builds the call, dispatches it and formats the result.
// Returns a cobra RunE compatible function
func Command(handler Handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter, err := Formatter(cmd)
		if err != nil {
			return err
		}

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		command, dispatchArgs, err := handler.Build(ctx, arguments)
		if err != nil {
			if fmtErr := formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return &cli.CodeError{Code: cli.ExitUsage, Err: err}
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return &cli.CodeError{Code: cli.ExitError, Err: err}
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		res := cliInstance.App.Dispatcher.Dispatch(ctx, command, dispatchArgs)
		if err := formatter.Result(res); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return cli.ResultError(res)
	}
}

// Formatter builds the output formatter from the --json and --quiet flags
// and the configured color scheme
func Formatter(cmd *cobra.Command) (*cli.OutputFormatter, error) {
	jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
	if err != nil {
		return nil, err
	}

	colors := config.DefaultColorScheme()
	if ctx := cmd.Context(); ctx != nil {
		if cfg, err := cli.ConfigFromContext(ctx); err == nil {
			colors = cfg.ColorScheme
		} else {
			slog.Debug("using default colors", "error", err)
		}
	}

	return cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr(), colors), nil
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		// Get the value based on flag type
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int64":
			if v, err := cmd.Flags().GetInt64(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether the flag was set on the command line
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt64 retrieves an int64 flag with default
func (a *Arguments) GetInt64(name string, defaultVal int64) int64 {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int64)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}
