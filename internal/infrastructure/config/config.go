// Package config loads and watches the workbench configuration.
package config

// Config holds the workbench configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"title=Logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database" jsonschema:"title=Database"`
	Shell    ShellConfig    `mapstructure:"shell" toml:"shell" json:"shell" jsonschema:"title=Shell"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`

	// Format is console or json.
	Format     string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	TimeFormat string `mapstructure:"time_format" toml:"time_format" json:"time_format,omitempty"`
}

// DatabaseConfig holds the layout store settings.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means $XDG_DATA_HOME/workbench/workbench.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// ShellConfig holds layout shell settings.
type ShellConfig struct {
	// DefaultRank is used for side bar widgets added without an explicit rank.
	DefaultRank int `mapstructure:"default_rank" toml:"default_rank" json:"default_rank" jsonschema:"minimum=0,default=100"`

	// RestoreOnStartup restores LayoutName when the shell starts.
	RestoreOnStartup bool   `mapstructure:"restore_on_startup" toml:"restore_on_startup" json:"restore_on_startup"`
	LayoutName       string `mapstructure:"layout_name" toml:"layout_name" json:"layout_name" jsonschema:"default=default"`
	StatusBarHidden  bool   `mapstructure:"status_bar_hidden" toml:"status_bar_hidden" json:"status_bar_hidden"`

	// AutosaveIntervalMs debounces background layout saves. 0 disables autosave.
	AutosaveIntervalMs int `mapstructure:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms" jsonschema:"minimum=0,default=2000"`
}
