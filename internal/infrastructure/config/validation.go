package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if config.Shell.DefaultRank < 0 {
		validationErrors = append(validationErrors, "shell.default_rank must be non-negative")
	}
	if config.Shell.AutosaveIntervalMs < 0 {
		validationErrors = append(validationErrors, "shell.autosave_interval_ms must be non-negative (0 disables autosave)")
	}
	if config.Shell.RestoreOnStartup && strings.TrimSpace(config.Shell.LayoutName) == "" {
		validationErrors = append(validationErrors, "shell.layout_name cannot be empty when shell.restore_on_startup is enabled")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}

// normalizeConfig lowercases enum-like values and trims names.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
	config.Shell.LayoutName = strings.TrimSpace(config.Shell.LayoutName)
}
