package config

import "time"

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output destination: stdout, stderr, file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// File path (required if output is "file")
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// Persist planet diagnostics to the database (requires database.enabled)
	Persist bool `mapstructure:"persist"`

	// Minimum level persisted to the database
	PersistLevel string `mapstructure:"persist_level" validate:"omitempty,oneof=debug info warn error"`

	// Identical messages within this window are stored once; 0 disables deduplication
	DedupWindow time.Duration `mapstructure:"dedup_window" validate:"min=0"`
}
