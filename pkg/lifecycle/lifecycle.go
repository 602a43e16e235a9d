// Package lifecycle defines the interfaces of the database lifecycle
// stages: schema management and bulk population.
package lifecycle

import (
	"context"

	"github.com/dexdata/dexdb/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations. Schema management is idempotent, safe to run multiple
// times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM
	// AutoMigrate. Also applies collation settings for stable name
	// sorting. If tables already exist, behavior depends on user
	// confirmation via DropAllTables.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate.
	Migrate(ctx context.Context, cfg *config.Config) error
}

// Populator defines the interface for bulk import of Pokédex data from
// a SQLite snapshot into PostgreSQL.
type Populator interface {
	// Populate imports all tables from the snapshot, verifies
	// referential integrity, and records the run in dex_loads.
	Populate(ctx context.Context, cfg *config.Config) error
}

// Verifier checks the integrity of loaded Pokédex data.
type Verifier interface {
	// Verify rebuilds the in-memory dataset from the snapshot, which
	// exercises every validation and invariant, and runs orphan checks
	// over every foreign key of the database.
	Verify(ctx context.Context, cfg *config.Config) error
}
