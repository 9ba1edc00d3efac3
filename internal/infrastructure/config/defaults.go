package config

import "github.com/bnema/workbench/internal/domain/entity"

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultLayoutName = "default"
	defaultAutosaveMs = 2000
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			TimeFormat: "15:04:05",
		},
		Shell: ShellConfig{
			DefaultRank:        entity.DefaultRank,
			RestoreOnStartup:   true,
			LayoutName:         defaultLayoutName,
			AutosaveIntervalMs: defaultAutosaveMs,
		},
	}
}
