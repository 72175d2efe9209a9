package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a row ID from a flag
func (p *FlagParser) ParseID(flagName string) (int64, error) {
	id, err := p.cmd.Flags().GetInt64(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", flagName)
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is required", flagName)
	}
	return value, nil
}

// ParseFilter extracts a search filter. A flag that was not given means no
// filter; an explicitly empty one is passed through as is.
func (p *FlagParser) ParseFilter(flagName string) (string, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return models.NoFilter, nil
	}
	return p.cmd.Flags().GetString(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
