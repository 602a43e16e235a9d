package schema_test

import (
	"strings"
	"testing"

	"github.com/dexdata/dexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPokemonTableDDL tests DDL generation for the Pokemon model
func TestPokemonTableDDL(t *testing.T) {
	ddl := schema.TableDDL(schema.Pokemon{})

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE pokemon")

	// Should have INT primary key
	assert.Contains(t, ddl, `"id" INT PRIMARY KEY`)

	// Should have required fields
	assert.Contains(t, ddl, `"name" VARCHAR(20) NOT NULL`)
	assert.Contains(t, ddl, `"species" VARCHAR(16) NOT NULL`)

	// Forme columns are nullable
	assert.Contains(t, ddl, `"forme_name" VARCHAR(16)`)
	assert.NotContains(t, ddl, `"forme_name" VARCHAR(16) NOT NULL`)

	// Self-reference back to the base forme
	assert.Contains(t, ddl, `"forme_base_pokemon_id" INT REFERENCES pokemon(id)`)
}

// TestCompositeKeyDDL tests that multi-column keys become a table-level
// constraint
func TestCompositeKeyDDL(t *testing.T) {
	ddl := schema.TableDDL(schema.PokemonType{})

	assert.Contains(t, ddl, "CREATE TABLE pokemon_types")
	assert.Contains(t, ddl, `PRIMARY KEY ("pokemon_id", "slot")`)

	// No inline markers remain once the key is table-level
	assert.NotContains(t, ddl, `"pokemon_id" INT PRIMARY KEY`)
	assert.NotContains(t, ddl, `"slot" INT PRIMARY KEY`)
}

func TestWideCompositeKeyDDL(t *testing.T) {
	ddl := schema.TableDDL(schema.PokemonMove{})

	assert.Contains(t, ddl,
		`PRIMARY KEY ("pokemon_id", "version_group_id", "move_id", "pokemon_move_method_id", "level")`)

	// "order" is a reserved word in both PostgreSQL and SQLite; it must
	// come out quoted.
	assert.Contains(t, ddl, `"order" INT`)
	assert.NotContains(t, ddl, "\n    order INT")
}

// TestMachineTableDDL tests DDL generation for the Machine model
func TestMachineTableDDL(t *testing.T) {
	ddl := schema.TableDDL(schema.Machine{})

	assert.Contains(t, ddl, "CREATE TABLE machines")
	assert.Contains(t, ddl, `PRIMARY KEY ("machine_number", "version_group_id")`)
	assert.Contains(t, ddl, `"move_id" INT NOT NULL REFERENCES moves(id)`)
}

// TestPokemonMovesIndexDDL tests index generation for the heavy
// association table
func TestPokemonMovesIndexDDL(t *testing.T) {
	indexes := schema.IndexDDL(schema.PokemonMove{})
	require.NotEmpty(t, indexes, "pokemon_moves should have secondary indexes")

	all := strings.Join(indexes, "\n")
	assert.Contains(t, all, "pokemon_id")
	assert.Contains(t, all, "move_id")
	assert.Contains(t, all, "version_group_id")
}

func TestNationalID(t *testing.T) {
	base := schema.Pokemon{ID: 413}
	assert.Equal(t, 413, base.NationalID())

	forme := schema.Pokemon{ID: 10041}
	forme.FormeBasePokemonID.Int32 = 413
	forme.FormeBasePokemonID.Valid = true
	assert.Equal(t, 413, forme.NationalID())
}

func TestFullName(t *testing.T) {
	p := schema.Pokemon{ID: 413, Name: "Wormadam"}
	assert.Equal(t, "Wormadam", p.FullName())

	p.FormeName.String = "sandy"
	p.FormeName.Valid = true
	assert.Equal(t, "Sandy Wormadam", p.FullName())

	// An empty forme name falls back to the plain species name.
	p.FormeName.String = ""
	assert.Equal(t, "Wormadam", p.FullName())
}

func TestMachineIsHM(t *testing.T) {
	tm := schema.Machine{MachineNumber: 99, VersionGroupID: 8}
	assert.False(t, tm.IsHM())

	hm := schema.Machine{MachineNumber: 100, VersionGroupID: 8}
	assert.True(t, hm.IsHM())
}

func TestNatureIsNeutral(t *testing.T) {
	hardy := schema.Nature{ID: 1, Name: "Hardy", IncreasedStatID: 2, DecreasedStatID: 2}
	assert.True(t, hardy.IsNeutral())

	adamant := schema.Nature{ID: 4, Name: "Adamant", IncreasedStatID: 2, DecreasedStatID: 4}
	assert.False(t, adamant.IsNeutral())
}

// TestAllModelsGenerateDDL tests that every registered model yields
// valid DDL and a table name
func TestAllModelsGenerateDDL(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 84)

	seen := make(map[string]bool)
	for _, m := range models {
		model, ok := m.(schema.Model)
		require.True(t, ok, "every registered model should implement Model")

		tableName := model.TableName()
		assert.NotEmpty(t, tableName, "TableName should return non-empty string")
		assert.False(t, seen[tableName], "duplicate table %s", tableName)
		seen[tableName] = true

		ddl := schema.TableDDL(model)
		assert.Contains(t, ddl, "CREATE TABLE "+tableName)
	}
}
