package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models, referenced tables before the
// tables that point at them, for GORM AutoMigrate and bulk import.
func AllModels() []interface{} {
	return []interface{}{
		// independent lookups
		&Language{},
		&Region{},
		&Generation{},
		&Pokedex{},
		&PokedexVersionGroup{},
		&VersionGroup{},
		&VersionGroupRegion{},
		&Version{},
		&MoveDamageClass{},
		&Stat{},
		&EggGroup{},
		&GrowthRate{},
		&Experience{},

		// contests
		&ContestType{},
		&ContestEffect{},
		&SuperContestEffect{},

		// types
		&Type{},
		&TypeEfficacy{},
		&TypeName{},

		// abilities
		&Ability{},
		&AbilityFlavorText{},
		&AbilityName{},

		// items
		&ItemPocket{},
		&ItemCategory{},
		&ItemFlingEffect{},
		&Item{},
		&ItemFlag{},
		&ItemFlagMap{},
		&ItemFlavorText{},
		&ItemInternalID{},
		&ItemName{},

		// berries
		&BerryFirmness{},
		&Berry{},
		&BerryFlavor{},

		// moves
		&MoveTarget{},
		&MoveEffect{},
		&MoveEffectCategory{},
		&MoveEffectCategoryMap{},
		&Move{},
		&MoveFlagType{},
		&MoveFlag{},
		&MoveFlavorText{},
		&MoveName{},
		&MoveBattleStyle{},
		&Machine{},
		&ContestCombo{},
		&SuperContestCombo{},

		// natures
		&Nature{},
		&NatureBattleStylePreference{},
		&NatureName{},
		&PokeathlonStat{},
		&NaturePokeathlonStat{},

		// creatures
		&PokemonColor{},
		&PokemonShape{},
		&PokemonHabitat{},
		&EvolutionChain{},
		&Pokemon{},
		&PokemonAbility{},
		&PokemonDexNumber{},
		&PokemonEggGroup{},
		&PokemonFlavorText{},
		&PokemonFormGroup{},
		&PokemonFormSprite{},
		&PokemonInternalID{},
		&PokemonItem{},
		&PokemonMoveMethod{},
		&PokemonMove{},
		&PokemonName{},
		&PokemonStat{},
		&PokemonType{},
		&EvolutionTrigger{},
		&PokemonEvolution{},

		// locations and encounters
		&Location{},
		&LocationArea{},
		&LocationInternalID{},
		&EncounterTerrain{},
		&LocationAreaEncounterRate{},
		&EncounterCondition{},
		&EncounterConditionValue{},
		&EncounterSlot{},
		&EncounterSlotCondition{},
		&Encounter{},
		&EncounterConditionValueMap{},

		// bookkeeping
		&DexLoad{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
