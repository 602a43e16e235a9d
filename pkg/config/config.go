// Package config provides configuration management for dexdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls).
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > dexdb.yaml >
// defaults
//
// # Environment Variables
//
// Use DEXDB_ prefix with underscores for nesting:
//
//	DEXDB_DATABASE_HOST=localhost
//	DEXDB_DATABASE_PORT=5432
//	DEXDB_LOG_LEVEL=info
//	DEXDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete dexdb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Populate contains settings specific to the populate command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations. Defaults to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk
	// import. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PopulateConfig contains settings specific to the populate command.
type PopulateConfig struct {
	// SnapshotPath points at the SQLite snapshot to import from.
	SnapshotPath string `mapstructure:"snapshot_path" yaml:"snapshot_path"`

	// Tables limits the import to the named tables. Empty means all.
	Tables []string `mapstructure:"tables" yaml:"tables"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging: 'error', 'warn', 'info', 'debug'.
	Level string `mapstructure:"level" yaml:"level"`
}

// New creates a Config with sensible default values. The returned
// config is always valid and ready to use.
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "dexdb",
			SSLMode:   "disable",
			BatchSize: 50_000,
		},
		Populate: PopulateConfig{
			SnapshotPath: "pokedex.sqlite",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
