package config

import (
	"fmt"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	switch c.List.Format {
	case FormatPlain, FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("list.format must be one of %q, %q (got %q)", FormatPlain, FormatJSON, c.List.Format))
	}

	switch c.List.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Sprintf("list.color must be one of %q, %q, %q (got %q)", ColorAuto, ColorAlways, ColorNever, c.List.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
