// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseBillID extracts a bill ID from a flag
func (p *FlagParser) ParseBillID(flagName string) (int64, error) {
	id, err := p.cmd.Flags().GetInt64(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0: %w", flagName, billservice.ErrInvalidBillID)
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

// ParseQuantity extracts a whole, non-negative quantity
func (p *FlagParser) ParseQuantity(flagName string) (int, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	q, err := billservice.ParseQuantity(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s %q: %w", flagName, raw, err)
	}
	return q, nil
}

// ParsePrice extracts a non-negative decimal price
func (p *FlagParser) ParsePrice(flagName string) (decimal.Decimal, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	price, err := billservice.ParsePrice(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s %q: %w", flagName, raw, err)
	}
	return price, nil
}

// ParseTotal extracts an optional total; nil when the flag is empty
func (p *FlagParser) ParseTotal(flagName string) (*decimal.Decimal, error) {
	raw, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	total, err := billservice.ParseTotal(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s %q: %w", flagName, raw, err)
	}
	return total, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
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
