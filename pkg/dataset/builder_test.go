package dataset_test

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/dexdata/dexdb/pkg/dataset"
	"github.com/dexdata/dexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBuilder seeds a builder with the lookup rows the fixtures
// reference.
func newTestBuilder(t *testing.T) *dataset.Builder {
	t.Helper()
	b := dataset.NewBuilder()

	err := b.Add(
		schema.Generation{ID: 1, Name: "Generation I"},
		schema.MoveDamageClass{ID: 1, Name: "None", Description: "Non-damaging"},
		schema.MoveDamageClass{ID: 2, Name: "Physical", Description: "Physical"},
		schema.MoveDamageClass{ID: 3, Name: "Special", Description: "Special"},
		schema.Stat{ID: 1, Name: "HP"},
		schema.Stat{ID: 2, Name: "Attack", DamageClassID: sql.NullInt32{Int32: 2, Valid: true}},
		schema.Stat{ID: 4, Name: "Special Attack", DamageClassID: sql.NullInt32{Int32: 3, Valid: true}},
		schema.PokemonColor{ID: 1, Name: "green"},
	)
	require.NoError(t, err)
	return b
}

func testPokemon(id int, name string) schema.Pokemon {
	return schema.Pokemon{
		ID:      id,
		Name:    name,
		Species: "Seed",
		ColorID: 1,
	}
}

func TestBuildAndLookup(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(testPokemon(1, "Bulbasaur")))

	d, err := b.Build()
	require.NoError(t, err)

	p, err := d.Pokemon(1)
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", p.Name)

	byName, err := d.PokemonByName("Bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	_, err = d.Pokemon(999)
	require.Error(t, err)
	assert.True(t, dataset.IsNotFound(err))
	assert.False(t, dataset.IsIntegrityViolation(err))
}

// A junction row written then read back keeps its composite key and
// payload intact.
func TestJunctionRoundTrip(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.Type{ID: 4, Name: "Poison", Abbreviation: "Psn", GenerationID: 1, DamageClassID: 2},
		schema.PokemonType{PokemonID: 1, TypeID: 4, Slot: 1},
	))

	d, err := b.Build()
	require.NoError(t, err)

	types := d.PokemonTypes(1)
	require.Len(t, types, 1)
	assert.Equal(t, 1, types[0].PokemonID)
	assert.Equal(t, 4, types[0].TypeID)
	assert.Equal(t, 1, types[0].Slot)
}

func TestTypesOrderedBySlot(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.Type{ID: 4, Name: "Poison", Abbreviation: "Psn", GenerationID: 1, DamageClassID: 2},
		schema.Type{ID: 12, Name: "Grass", Abbreviation: "Grs", GenerationID: 1, DamageClassID: 3},
	))

	// Insert out of slot order.
	require.NoError(t, b.Add(
		schema.PokemonType{PokemonID: 1, TypeID: 4, Slot: 2},
		schema.PokemonType{PokemonID: 1, TypeID: 12, Slot: 1},
	))

	d, err := b.Build()
	require.NoError(t, err)

	types := d.PokemonTypes(1)
	require.Len(t, types, 2)
	assert.Equal(t, 1, types[0].Slot)
	assert.Equal(t, 12, types[0].TypeID)
	assert.Equal(t, 2, types[1].Slot)
}

func TestMovesOrderedByMethodLevelOrder(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.Type{ID: 4, Name: "Poison", Abbreviation: "Psn", GenerationID: 1, DamageClassID: 2},
		schema.MoveTarget{ID: 1, Name: "Selected pokémon", Description: "One selected target."},
		schema.MoveEffect{ID: 1, ShortEffect: "Regular damage.", Effect: "Inflicts regular damage."},
		schema.VersionGroup{ID: 8, GenerationID: 1},
		schema.PokemonMoveMethod{ID: 1, Name: "Level up", Description: "Learned at a level."},
		schema.PokemonMoveMethod{ID: 4, Name: "Machine", Description: "Taught by a TM or HM."},
		schema.Move{ID: 33, Name: "Tackle", GenerationID: 1, TypeID: 4, Power: 35, PP: 35, TargetID: 1, DamageClassID: 2, EffectID: 1},
		schema.Move{ID: 45, Name: "Growl", GenerationID: 1, TypeID: 4, Power: 0, PP: 40, TargetID: 1, DamageClassID: 2, EffectID: 1},
	))

	// A machine move and a level-up move share level 1; the machine
	// method arrives first, but method breaks the tie.
	require.NoError(t, b.Add(
		schema.PokemonMove{PokemonID: 1, VersionGroupID: 8, MoveID: 45, PokemonMoveMethodID: 4, Level: 1},
		schema.PokemonMove{PokemonID: 1, VersionGroupID: 8, MoveID: 33, PokemonMoveMethodID: 1, Level: 1},
	))

	d, err := b.Build()
	require.NoError(t, err)

	moves := d.PokemonMoves(1)
	require.Len(t, moves, 2)
	assert.Equal(t, 1, moves[0].PokemonMoveMethodID)
	assert.Equal(t, 33, moves[0].MoveID)
	assert.Equal(t, 4, moves[1].PokemonMoveMethodID)
	assert.Equal(t, 45, moves[1].MoveID)
}

func TestOrphanRejectedAtBuild(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(testPokemon(1, "Bulbasaur")))

	// The color does not exist yet; Add must tolerate it, Build must
	// not.
	bad := testPokemon(2, "Ivysaur")
	bad.ColorID = 99
	require.NoError(t, b.Add(bad))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, dataset.IsIntegrityViolation(err))
	assert.Contains(t, err.Error(), "color_id")

	// Prior rows stay intact; supplying the missing row repairs the
	// load.
	require.NoError(t, b.Add(schema.PokemonColor{ID: 99, Name: "violet"}))
	d, err := b.Build()
	require.NoError(t, err)
	_, err = d.Pokemon(1)
	assert.NoError(t, err)
}

func TestSelfReferenceResolvedAtBuild(t *testing.T) {
	b := newTestBuilder(t)

	// The forme arrives before its base; deferred resolution makes
	// this legal.
	forme := testPokemon(10041, "Wormadam")
	forme.FormeName = sql.NullString{String: "sandy", Valid: true}
	forme.FormeBasePokemonID = sql.NullInt32{Int32: 413, Valid: true}
	require.NoError(t, b.Add(forme))
	require.NoError(t, b.Add(testPokemon(413, "Wormadam")))

	d, err := b.Build()
	require.NoError(t, err)

	formes := d.Formes(413)
	require.Len(t, formes, 1)
	assert.Equal(t, 10041, formes[0].ID)

	base := d.BaseForme(formes[0])
	assert.Equal(t, 413, base.ID)
}

func TestFormeOfFormeRejected(t *testing.T) {
	b := newTestBuilder(t)

	base := testPokemon(1, "Bulbasaur")
	middle := testPokemon(2, "Ivysaur")
	middle.FormeBasePokemonID = sql.NullInt32{Int32: 1, Valid: true}
	leaf := testPokemon(3, "Venusaur")
	leaf.FormeBasePokemonID = sql.NullInt32{Int32: 2, Valid: true}
	require.NoError(t, b.Add(base, middle, leaf))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, dataset.IsIntegrityViolation(err))
}

func TestDuplicateCompositeKey(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.Type{ID: 4, Name: "Poison", Abbreviation: "Psn", GenerationID: 1, DamageClassID: 2},
		schema.PokemonType{PokemonID: 1, TypeID: 4, Slot: 1},
	))

	err := b.Add(schema.PokemonType{PokemonID: 1, TypeID: 4, Slot: 1})
	require.Error(t, err)
	assert.True(t, dataset.IsIntegrityViolation(err))
}

func TestLengthViolation(t *testing.T) {
	b := newTestBuilder(t)

	long := testPokemon(1, strings.Repeat("a", 21))
	err := b.Add(long)
	require.Error(t, err)
	assert.True(t, dataset.IsIntegrityViolation(err))
	assert.Contains(t, err.Error(), "name")
}

func TestEnumViolation(t *testing.T) {
	b := dataset.NewBuilder()

	evo := schema.PokemonEvolution{
		FromPokemonID:      1,
		ToPokemonID:        2,
		EvolutionTriggerID: 1,
		Gender:             sql.NullString{String: "unknown", Valid: true},
	}
	err := b.Add(evo)
	require.Error(t, err)
	assert.True(t, dataset.IsIntegrityViolation(err))
}

func TestFrozenAfterBuild(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(testPokemon(1, "Bulbasaur")))

	_, err := b.Build()
	require.NoError(t, err)

	err = b.Add(testPokemon(2, "Ivysaur"))
	require.Error(t, err)
	assert.False(t, dataset.IsNotFound(err))
}
