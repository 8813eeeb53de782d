// Package config provides YAML-based configuration for icon generation.
package config

import (
	"errors"
	"fmt"
)

// Config controls which icons are generated and where they are written.
type Config struct {
	Style     string `yaml:"style"`      // Registered style ID
	OutputDir string `yaml:"output_dir"` // Must already exist
	Sizes     []int  `yaml:"sizes"`      // Edge lengths in pixels, written in order
}

// Validate checks that the configuration can drive a generation run.
func (c Config) Validate() error {
	var errs []error
	if c.Style == "" {
		errs = append(errs, errors.New("style is empty"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir is empty"))
	}
	if len(c.Sizes) == 0 {
		errs = append(errs, errors.New("sizes is empty"))
	}
	for _, s := range c.Sizes {
		if s < 1 {
			errs = append(errs, fmt.Errorf("size %d is not positive", s))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
