package iopopulate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/dexdata/dexdb/pkg/dataset"
	"github.com/dexdata/dexdb/pkg/schema"

	// SQLite driver for reading snapshots, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// openSnapshot opens a SQLite snapshot file and returns a database
// handle.
func openSnapshot(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, snapshotNotFoundError(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, snapshotOpenError(path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, snapshotOpenError(path, err)
	}

	return db, nil
}

// snapshotTables returns the set of table names present in a snapshot.
// Snapshots produced by older dumps miss some tables; those are skipped
// with a warning instead of failing the whole import.
func snapshotTables(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return nil, snapshotReadError("sqlite_master", err)
	}
	defer rows.Close()

	res := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, snapshotReadError("sqlite_master", err)
		}
		res[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, snapshotReadError("sqlite_master", err)
	}
	return res, nil
}

// scanTable reads every row of a table from the snapshot into model
// structs. Column order and scan targets come from the schema registry,
// so the query works for any model without per-table code.
func scanTable(
	ctx context.Context, db *sql.DB, m schema.Model,
) ([]schema.Model, error) {
	table := m.TableName()
	cols := schema.Columns(m)

	// Quoted; column names like pokemon_moves.order are reserved words.
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = schema.QuoteColumn(col.Name)
	}
	query := fmt.Sprintf(
		"SELECT %s FROM %s", strings.Join(names, ", "), table,
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, snapshotReadError(table, err)
	}
	defer rows.Close()

	t := reflect.TypeOf(m)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []schema.Model
	for rows.Next() {
		rv := reflect.New(t).Elem()
		dest := make([]any, len(cols))
		for i, col := range cols {
			dest[i] = rv.Field(col.FieldIndex).Addr().Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, snapshotReadError(table, err)
		}
		res = append(res, rv.Interface().(schema.Model))
	}
	if err := rows.Err(); err != nil {
		return nil, snapshotReadError(table, err)
	}
	return res, nil
}

// BuildDataset loads a snapshot straight into an immutable in-memory
// Dataset, bypassing PostgreSQL. Tables absent from the snapshot are
// treated as empty.
func BuildDataset(
	ctx context.Context, path string,
) (*dataset.Dataset, error) {
	db, err := openSnapshot(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	present, err := snapshotTables(ctx, db)
	if err != nil {
		return nil, err
	}

	bld := dataset.NewBuilder()
	for _, m := range schema.AllModels() {
		model := m.(schema.Model)
		if model.TableName() == "dex_loads" {
			continue
		}
		if !present[model.TableName()] {
			continue
		}
		models, err := scanTable(ctx, db, model)
		if err != nil {
			return nil, err
		}
		if err := bld.Add(models...); err != nil {
			return nil, err
		}
	}
	return bld.Build()
}
