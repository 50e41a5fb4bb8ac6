package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.Root) == "" {
		return fmt.Errorf("paths.root must not be empty")
	}
	for name, value := range map[string]string{
		"paths.custom_formats_dir": c.Paths.CustomFormats,
		"paths.regex_patterns_dir": c.Paths.RegexPatterns,
		"paths.profiles_dir":       c.Paths.Profiles,
		"paths.legacy_formats_dir": c.Paths.LegacyFormats,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
		if filepath.IsAbs(value) {
			return fmt.Errorf("%s must be relative to paths.root, got %q", name, value)
		}
	}
	return nil
}
