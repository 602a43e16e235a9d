// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"fmt"
	"sort"

	"github.com/dexdata/dexdb/pkg/config"
	"github.com/dexdata/dexdb/pkg/db"
	"github.com/dexdata/dexdb/pkg/lifecycle"
	"github.com/dexdata/dexdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using
// GORM AutoMigrate. Also applies collation settings so slug
// columns sort bytewise.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return createSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return migrateSchemaError(err)
	}

	return nil
}

func (m *manager) gormDB() (*gorm.DB, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, notConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, gormConnectionError(err)
	}
	return gormDB, nil
}

// setCollation sets "C" collation on slug columns, taken from the
// column registry. Slugs are compared and sorted bytewise, so they
// must not follow locale rules.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return notConnectedError()
	}

	for _, col := range slugColumns() {
		q := fmt.Sprintf(
			`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
			col.Table, col.Name, col.MaxLen,
		)
		if _, err := pool.Exec(ctx, q); err != nil {
			return collationError(col.Table, col.Name, err)
		}
	}

	return nil
}

// slugColumns returns every identifier-classified column, in a stable
// order.
func slugColumns() []schema.ColumnInfo {
	var cols []schema.ColumnInfo
	for _, tableCols := range schema.AllColumns() {
		for _, col := range tableCols {
			if col.Markup == schema.MarkupIdentifier && col.MaxLen > 0 {
				cols = append(cols, col)
			}
		}
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].Table != cols[j].Table {
			return cols[i].Table < cols[j].Table
		}
		return cols[i].Name < cols[j].Name
	})
	return cols
}
