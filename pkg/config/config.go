// Package config loads importanize settings from a config file, environment
// variables and defaults.
package config

import (
	"errors"
	"strings"
)

// DefaultLineLength is the line width above which from-imports are wrapped
// into the parenthesized one-name-per-line form.
const DefaultLineLength = 80

// Config is the top-level configuration struct for importanize.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Locals are first-party package prefixes grouped after third-party
	// imports, in addition to the package detected from project metadata.
	Locals []string `mapstructure:"locals"`
	// LineLength is the wrap threshold for rendered statements; 0 disables
	// wrapping.
	LineLength int `mapstructure:"line_length"`
	// Exclude holds glob patterns of paths to skip.
	Exclude []string `mapstructure:"exclude"`
}

// ErrInvalidLineLength indicates the configured line length is negative.
var ErrInvalidLineLength = errors.New("line_length must be non-negative")

// ErrEmptyLocalPrefix indicates a blank entry in the locals list.
var ErrEmptyLocalPrefix = errors.New("locals must not contain empty prefixes")

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.LineLength < 0 {
		return ErrInvalidLineLength
	}
	for _, local := range c.Locals {
		if strings.TrimSpace(local) == "" {
			return ErrEmptyLocalPrefix
		}
	}
	return nil
}
