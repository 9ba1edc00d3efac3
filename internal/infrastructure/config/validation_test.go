package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "negative rank",
			mutate:  func(c *Config) { c.Shell.DefaultRank = -3 },
			wantErr: "shell.default_rank",
		},
		{
			name:    "negative autosave interval",
			mutate:  func(c *Config) { c.Shell.AutosaveIntervalMs = -1 },
			wantErr: "shell.autosave_interval_ms",
		},
		{
			name:    "restore without layout name",
			mutate:  func(c *Config) { c.Shell.LayoutName = " " },
			wantErr: "shell.layout_name",
		},
		{
			name: "no restore allows empty layout name",
			mutate: func(c *Config) {
				c.Shell.RestoreOnStartup = false
				c.Shell.LayoutName = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: " WARN ", Format: ""}}
	cfg.Shell.LayoutName = "  main "

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "main", cfg.Shell.LayoutName)
}
