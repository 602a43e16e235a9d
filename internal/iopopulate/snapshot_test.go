package iopopulate

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexdata/dexdb/pkg/errcode"
	"github.com/dexdata/dexdb/pkg/schema"
)

// newSnapshot creates a small SQLite snapshot on disk, using the same
// DDL the schema registry generates for PostgreSQL.
func newSnapshot(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pokedex.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	models := []schema.Model{
		schema.Region{},
		schema.PokemonColor{},
		schema.MoveDamageClass{},
		schema.Stat{},
		schema.Generation{},
	}
	for _, m := range models {
		_, err = db.Exec(schema.TableDDL(m))
		require.NoError(t, err, m.TableName())
	}

	stmts := []string{
		`INSERT INTO regions (id, name) VALUES (1, 'Kanto')`,
		`INSERT INTO pokemon_colors (id, name) VALUES (1, 'green')`,
		`INSERT INTO move_damage_classes (id, name, description) VALUES
		   (1, 'None', 'No damage'),
		   (2, 'Physical', 'Physical damage'),
		   (3, 'Special', 'Special damage')`,
		`INSERT INTO stats (id, damage_class_id, name) VALUES
		   (1, NULL, 'HP'),
		   (2, 2, 'Attack')`,
		`INSERT INTO generations
		   (id, main_region_id, canonical_pokedex_id, name) VALUES
		   (1, 1, NULL, 'Generation I')`,
	}
	for _, stmt := range stmts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	return db, path
}

func TestSnapshotTables(t *testing.T) {
	db, _ := newSnapshot(t)

	present, err := snapshotTables(context.Background(), db)
	require.NoError(t, err)

	assert.True(t, present["stats"])
	assert.True(t, present["generations"])
	assert.False(t, present["pokemon"])
}

func TestScanTableNullable(t *testing.T) {
	db, _ := newSnapshot(t)

	rows, err := scanTable(context.Background(), db, schema.Stat{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := make(map[int]schema.Stat)
	for _, row := range rows {
		stat := row.(schema.Stat)
		byID[stat.ID] = stat
	}

	assert.False(t, byID[1].DamageClassID.Valid)
	assert.Equal(t, "HP", byID[1].Name)
	assert.True(t, byID[2].DamageClassID.Valid)
	assert.Equal(t, int32(2), byID[2].DamageClassID.Int32)
}

func TestBuildDataset(t *testing.T) {
	_, path := newSnapshot(t)

	ds, err := BuildDataset(context.Background(), path)
	require.NoError(t, err)

	stat, err := ds.Stat(2)
	require.NoError(t, err)
	assert.Equal(t, "Attack", stat.Name)

	dc, err := ds.DamageClass(3)
	require.NoError(t, err)
	assert.Equal(t, "Special", dc.Name)

	assert.Len(t, ds.Rows("generations"), 1)
}

func TestOpenSnapshotMissing(t *testing.T) {
	_, err := openSnapshot(filepath.Join(t.TempDir(), "none.sqlite"))
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.PopulateSnapshotNotFoundError, gnErr.Code)
}

func TestCopyModels(t *testing.T) {
	all := copyModels(nil)
	assert.Len(t, all, len(schema.AllModels())-1)
	for _, m := range all {
		assert.NotEqual(t, "dex_loads", m.TableName())
	}

	filtered := copyModels([]string{"stats", "regions"})
	require.Len(t, filtered, 2)
	names := map[string]bool{
		filtered[0].TableName(): true,
		filtered[1].TableName(): true,
	}
	assert.True(t, names["stats"])
	assert.True(t, names["regions"])
}

func TestForeignKeys(t *testing.T) {
	fks := foreignKeys()
	require.NotEmpty(t, fks)

	found := false
	for _, fk := range fks {
		if fk.table == "stats" && fk.column == "damage_class_id" {
			assert.Equal(t, "move_damage_classes", fk.refTable)
			assert.Equal(t, "id", fk.refColumn)
			found = true
		}
	}
	assert.True(t, found)
}

// The pokemon_moves "order" column is a reserved word; generated DDL
// and SELECT statements must quote it to be executable.
func TestPokemonMovesSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema.TableDDL(schema.PokemonMove{}))
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO pokemon_moves
	   (pokemon_id, version_group_id, move_id,
	    pokemon_move_method_id, level, "order") VALUES
	   (1, 8, 33, 1, 1, 5),
	   (1, 8, 45, 1, 1, NULL)`)
	require.NoError(t, err)

	rows, err := scanTable(context.Background(), db, schema.PokemonMove{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byMove := make(map[int]schema.PokemonMove)
	for _, row := range rows {
		pm := row.(schema.PokemonMove)
		byMove[pm.MoveID] = pm
	}

	require.True(t, byMove[33].Order.Valid)
	assert.Equal(t, int32(5), byMove[33].Order.Int32)
	assert.False(t, byMove[45].Order.Valid)
}

func TestRowValuesNulls(t *testing.T) {
	stat := schema.Stat{ID: 1, Name: "HP"}
	vals := rowValues(stat, schema.Columns(stat))

	require.Len(t, vals, 3)
	assert.Equal(t, 1, vals[0])
	assert.Nil(t, vals[1])
	assert.Equal(t, "HP", vals[2])
}
