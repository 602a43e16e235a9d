package dataset_test

import (
	"testing"

	"github.com/dexdata/dexdb/pkg/dataset"
	"github.com/dexdata/dexdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWithStats creates a dataset holding one pokémon with the given
// Attack and Special Attack base stats.
func buildWithStats(t *testing.T, attack, spAttack int) *dataset.Dataset {
	t.Helper()
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.PokemonStat{PokemonID: 1, StatID: 2, BaseStat: attack},
		schema.PokemonStat{PokemonID: 1, StatID: 4, BaseStat: spAttack},
	))

	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func TestBetterDamageClassPhysical(t *testing.T) {
	d := buildWithStats(t, 100, 90)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	dc, err := d.BetterDamageClass(p)
	require.NoError(t, err)
	require.NotNil(t, dc)
	assert.Equal(t, "Physical", dc.Name)
}

func TestBetterDamageClassSpecial(t *testing.T) {
	d := buildWithStats(t, 90, 100)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	dc, err := d.BetterDamageClass(p)
	require.NoError(t, err)
	require.NotNil(t, dc)
	assert.Equal(t, "Special", dc.Name)
}

// A difference within the threshold means no preference: a nil result,
// not the class named "None".
func TestBetterDamageClassNoPreference(t *testing.T) {
	d := buildWithStats(t, 95, 92)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	dc, err := d.BetterDamageClass(p)
	require.NoError(t, err)
	assert.Nil(t, dc)
}

func TestBetterDamageClassThresholdBoundary(t *testing.T) {
	// diff of exactly 5 is still no preference.
	d := buildWithStats(t, 100, 95)
	p, _ := d.Pokemon(1)
	dc, err := d.BetterDamageClass(p)
	require.NoError(t, err)
	assert.Nil(t, dc)

	// diff of 6 tips it.
	d = buildWithStats(t, 101, 95)
	p, _ = d.Pokemon(1)
	dc, err = d.BetterDamageClass(p)
	require.NoError(t, err)
	require.NotNil(t, dc)
	assert.Equal(t, "Physical", dc.Name)
}

func TestPokemonStatLookup(t *testing.T) {
	d := buildWithStats(t, 49, 65)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	// By name.
	ps, err := d.PokemonStat(p, "Attack")
	require.NoError(t, err)
	assert.Equal(t, 49, ps.BaseStat)

	// By stat row.
	stat, err := d.Stat(4)
	require.NoError(t, err)
	ps, err = d.PokemonStat(p, stat)
	require.NoError(t, err)
	assert.Equal(t, 65, ps.BaseStat)
}

// An unknown stat is a typed, recoverable failure that names what was
// asked for.
func TestPokemonStatNotFound(t *testing.T) {
	d := buildWithStats(t, 49, 65)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	_, err = d.PokemonStat(p, "Sturdiness")
	require.Error(t, err)
	assert.True(t, dataset.IsNotFound(err))
	assert.False(t, dataset.IsIntegrityViolation(err))
	assert.Contains(t, err.Error(), "Sturdiness")
}

func TestItemAppearsUnderground(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		schema.ItemPocket{ID: 1, Identifier: "misc", Name: "Items"},
		schema.ItemCategory{ID: 1, PocketID: 1, Name: "Loot"},
		schema.ItemFlag{ID: 1, Identifier: "underground", Name: "Appears underground"},
		schema.ItemFlag{ID: 2, Identifier: "holdable", Name: "Can be held"},
		schema.Item{ID: 1, Name: "Red Shard", CategoryID: 1, Effect: "No effect"},
		schema.Item{ID: 2, Name: "Master Ball", CategoryID: 1, Effect: "Never fails"},
		schema.ItemFlagMap{ItemID: 1, ItemFlagID: 1},
		schema.ItemFlagMap{ItemID: 2, ItemFlagID: 2},
	))

	d, err := b.Build()
	require.NoError(t, err)

	shard, err := d.Item(1)
	require.NoError(t, err)
	assert.True(t, d.ItemAppearsUnderground(shard))

	ball, err := d.Item(2)
	require.NoError(t, err)
	assert.False(t, d.ItemAppearsUnderground(ball))
}

func TestColorNameProxy(t *testing.T) {
	d := buildWithStats(t, 49, 65)
	p, err := d.Pokemon(1)
	require.NoError(t, err)

	assert.Equal(t, "green", d.ColorName(p))
}

func TestMaxExperience(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		schema.GrowthRate{ID: 1, Name: "medium", Formula: `x^3`},
		schema.Experience{GrowthRateID: 1, Level: 99, Experience: 970299},
		schema.Experience{GrowthRateID: 1, Level: 100, Experience: 1000000},
	))

	d, err := b.Build()
	require.NoError(t, err)

	exp, err := d.MaxExperience(1)
	require.NoError(t, err)
	assert.Equal(t, 1000000, exp)

	_, err = d.MaxExperience(2)
	require.Error(t, err)
	assert.True(t, dataset.IsNotFound(err))
}

func TestEncounterContext(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.Add(
		testPokemon(1, "Bulbasaur"),
		schema.Region{ID: 1, Name: "Kanto"},
		schema.VersionGroup{ID: 1, GenerationID: 1},
		schema.Version{ID: 1, VersionGroupID: 1, Name: "Red"},
		schema.Location{ID: 1, Name: "Viridian Forest"},
		schema.LocationArea{ID: 1, LocationID: 1, InternalID: 1},
		schema.EncounterTerrain{ID: 1, Name: "Walking in tall grass or a cave"},
		schema.EncounterSlot{ID: 1, VersionGroupID: 1, EncounterTerrainID: 1, Rarity: 20},
		schema.EncounterCondition{ID: 1, Name: "Swarm"},
		schema.EncounterConditionValue{ID: 1, EncounterConditionID: 1, Name: "During a swarm"},
		schema.Encounter{
			ID: 1, VersionID: 1, LocationAreaID: 1,
			EncounterSlotID: 1, PokemonID: 1, MinLevel: 3, MaxLevel: 5,
		},
		schema.EncounterConditionValueMap{EncounterID: 1, EncounterConditionValueID: 1},
	))

	d, err := b.Build()
	require.NoError(t, err)

	ctx, err := d.EncounterContext(1)
	require.NoError(t, err)
	assert.Equal(t, 20, ctx.Slot.Rarity)
	assert.Equal(t, "Walking in tall grass or a cave", ctx.Terrain.Name)
	require.Len(t, ctx.Conditions, 1)
	assert.Equal(t, "During a swarm", ctx.Conditions[0].Name)
}
