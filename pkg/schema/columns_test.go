package schema_test

import (
	"testing"

	"github.com/dexdata/dexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsPokemon(t *testing.T) {
	cols := schema.Columns(schema.Pokemon{})
	require.Len(t, cols, 20)

	byName := make(map[string]schema.ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}

	id := byName["id"]
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.Nullable)
	assert.Equal(t, "INT", id.Type)

	name := byName["name"]
	assert.Equal(t, "VARCHAR(20)", name.Type)
	assert.Equal(t, 20, name.MaxLen)
	assert.False(t, name.Nullable)

	formeBase := byName["forme_base_pokemon_id"]
	assert.True(t, formeBase.Nullable)
	assert.Equal(t, "pokemon", formeBase.RefTable)
	assert.Equal(t, "id", formeBase.RefColumn)
}

func TestColumnsTextClassification(t *testing.T) {
	cols := schema.Columns(schema.Ability{})
	byName := make(map[string]schema.ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}

	name := byName["name"]
	assert.Equal(t, schema.MarkupPlaintext, name.Markup)
	assert.True(t, name.Official)
	assert.False(t, name.Foreign)

	effect := byName["effect"]
	assert.Equal(t, schema.MarkupMarkdown, effect.Markup)
	assert.False(t, effect.Official)
}

// Egg group names double as official English names and as slugs; both
// classifications survive the tag round trip.
func TestColumnsDoubleClassification(t *testing.T) {
	cols := schema.Columns(schema.EggGroup{})
	require.Len(t, cols, 2)

	name := cols[1]
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, schema.MarkupIdentifier, name.Markup)
	assert.True(t, name.Official)
}

func TestColumnsForeignName(t *testing.T) {
	cols := schema.Columns(schema.AbilityName{})
	byName := make(map[string]schema.ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}

	name := byName["name"]
	assert.True(t, name.Foreign)
	assert.Equal(t, schema.MarkupPlaintext, name.Markup)
}

func TestColumnsLatexFormula(t *testing.T) {
	cols := schema.Columns(schema.GrowthRate{})
	byName := make(map[string]schema.ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}

	assert.Equal(t, schema.MarkupLatex, byName["formula"].Markup)
}

func TestColumnsEnum(t *testing.T) {
	cols := schema.Columns(schema.PokemonEvolution{})
	byName := make(map[string]schema.ColumnInfo)
	for _, c := range cols {
		byName[c.Name] = c
	}

	assert.Equal(t, []string{"male", "female"}, byName["gender"].Enum)
	assert.Equal(t, []string{"morning", "day", "night"}, byName["time_of_day"].Enum)
}

func TestPrimaryKey(t *testing.T) {
	pk := schema.PrimaryKey(schema.PokemonMove{})
	require.Len(t, pk, 5)
	assert.Equal(t, "pokemon_id", pk[0].Name)
	assert.Equal(t, "level", pk[4].Name)

	// Key columns are never nullable.
	for _, col := range pk {
		assert.False(t, col.Nullable, col.Name)
	}
}

func TestAllColumnsCoversEveryTable(t *testing.T) {
	all := schema.AllColumns()
	require.Len(t, all, 84)

	for table, cols := range all {
		assert.NotEmpty(t, cols, "table %s has no columns", table)
		var pk int
		for _, c := range cols {
			assert.Equal(t, table, c.Table)
			if c.PrimaryKey {
				pk++
			}
		}
		assert.Positive(t, pk, "table %s has no primary key", table)
	}
}
