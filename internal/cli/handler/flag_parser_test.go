package handler

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with no flags
func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	return cmd
}

// ============================================================================
// ParseID Tests
// ============================================================================

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue int64
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "valid ID",
			flagValue: 42,
		},
		{
			name:      "valid ID = 1",
			flagValue: 1,
		},
		{
			name:      "zero ID",
			flagValue: 0,
			wantErr:   true,
			errMsg:    "must be greater than 0",
		},
		{
			name:      "negative ID",
			flagValue: -1,
			wantErr:   true,
			errMsg:    "must be greater than 0",
		},
		{
			name:      "large ID",
			flagValue: 9_000_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int64("id", tt.flagValue, "row id")

			result, err := NewFlagParser(cmd).ParseID("id")

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing '%s', got nil", tt.errMsg)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing '%s', got '%s'", tt.errMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if result != tt.flagValue {
				t.Errorf("expected %d, got %d", tt.flagValue, result)
			}
		})
	}
}

func TestParseID_WrongFlagType(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("id", "7", "row id")

	if _, err := NewFlagParser(cmd).ParseID("id"); err == nil {
		t.Error("expected error for a string flag")
	}
}

// ============================================================================
// ParseString Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue string
		want      string
		wantErr   bool
	}{
		{name: "plain value", flagValue: "level", want: "level"},
		{name: "trimmed", flagValue: "  lab_name\t", want: "lab_name"},
		{name: "empty", flagValue: "", wantErr: true},
		{name: "whitespace only", flagValue: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("field", tt.flagValue, "field")

			got, err := NewFlagParser(cmd).ParseString("field")
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), "field is required") {
					t.Errorf("expected 'field is required', got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseString_NonExistentFlag(t *testing.T) {
	t.Parallel()

	if _, err := NewFlagParser(createTestCommand()).ParseString("missing"); err == nil {
		t.Error("expected error for a missing flag")
	}
}

// ============================================================================
// ParseFilter Tests
// ============================================================================

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "not given", args: nil, want: models.NoFilter},
		{name: "value", args: []string{"--lab=Optics"}, want: "Optics"},
		{name: "explicit dash", args: []string{"--lab=-"}, want: "-"},
		{name: "explicit empty", args: []string{"--lab="}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("lab", "", "lab filter")
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			got, err := NewFlagParser(cmd).ParseFilter("lab")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ============================================================================
// OutputFormats Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantJSON  bool
		wantQuiet bool
	}{
		{name: "defaults", args: nil},
		{name: "json", args: []string{"--json"}, wantJSON: true},
		{name: "quiet", args: []string{"--quiet"}, wantQuiet: true},
		{name: "both", args: []string{"--json", "--quiet"}, wantJSON: true, wantQuiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			AddOutputFlags(cmd)
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if jsonOutput != tt.wantJSON {
				t.Errorf("json: expected %v, got %v", tt.wantJSON, jsonOutput)
			}
			if quietMode != tt.wantQuiet {
				t.Errorf("quiet: expected %v, got %v", tt.wantQuiet, quietMode)
			}
		})
	}
}

func TestOutputFormats_MissingFlags(t *testing.T) {
	t.Parallel()

	if _, _, err := NewFlagParser(createTestCommand()).OutputFormats(); err == nil {
		t.Error("expected error when output flags are not registered")
	}
}

// ============================================================================
// Arguments Tests
// ============================================================================

func TestParseFlagsToMap(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("lab-name", "", "")
	cmd.Flags().Int("count", 0, "")
	cmd.Flags().Int64("id", 0, "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().String("unset", "default", "")
	if err := cmd.Flags().Parse([]string{"--lab-name=AAA-L", "--count=5", "--id=9", "--json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	args := &Arguments{Flags: parseFlagsToMap(cmd), cmd: cmd}

	if got := args.GetString("lab-name", ""); got != "AAA-L" {
		t.Errorf("lab-name: got %q", got)
	}
	if got := args.GetInt("count", 0); got != 5 {
		t.Errorf("count: got %d", got)
	}
	if got := args.GetInt64("id", 0); got != 9 {
		t.Errorf("id: got %d", got)
	}
	if !args.GetBool("json") {
		t.Error("json: expected true")
	}
	if args.Has("unset") {
		t.Error("flags left at their default are not in the map")
	}
	if got := args.GetString("unset", "fallback"); got != "fallback" {
		t.Errorf("unset: got %q", got)
	}
	if got := args.GetInt("lab-name", -1); got != -1 {
		t.Errorf("type mismatch should return the default, got %d", got)
	}
	if args.GetCmd() != cmd {
		t.Error("GetCmd should return the parsed command")
	}
}
