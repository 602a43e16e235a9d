package schema

import "database/sql"

// Encounter is an encounter with a wild pokémon.
//
// Within a given area in a given game, encounters are differentiated by
// the "slot" they are in and the state of the game world. What the player
// is doing to get an encounter, such as surfing or walking through tall
// grass, is called terrain; each terrain has its own set of slots. Within
// a terrain, slots are defined primarily by rarity, and both slots and
// individual encounters can be restricted by world conditions (for
// example, whether a swarm is in effect). A slot plus the appropriate
// condition values are thus enough to define a specific encounter.
type Encounter struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// VersionID is the ID of the version this encounter applies to.
	VersionID int `db:"version_id" ddl:"INT NOT NULL REFERENCES versions(id)"`

	// LocationAreaID is the ID of the area where this encounter happens.
	LocationAreaID int `db:"location_area_id" ddl:"INT NOT NULL REFERENCES location_areas(id)"`

	// EncounterSlotID is the ID of the slot, which determines terrain and
	// rarity.
	EncounterSlotID int `db:"encounter_slot_id" ddl:"INT NOT NULL REFERENCES encounter_slots(id)"`

	// PokemonID is the ID of the encountered pokémon.
	PokemonID int `db:"pokemon_id" ddl:"INT NOT NULL REFERENCES pokemon(id)"`

	// MinLevel is the minimum level of the encountered pokémon.
	MinLevel int `db:"min_level" ddl:"INT NOT NULL"`

	// MaxLevel is the maximum level of the encountered pokémon.
	MaxLevel int `db:"max_level" ddl:"INT NOT NULL"`
}

func (Encounter) TableName() string { return "encounters" }

// EncounterCondition is a condition in the game world that affects
// encounters, such as time of day.
type EncounterCondition struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is an English name of the condition.
	Name string `db:"name" ddl:"VARCHAR(64) NOT NULL" text:"plaintext"`
}

func (EncounterCondition) TableName() string { return "encounter_conditions" }

// EncounterConditionValue is a possible state for a condition; for
// example, the state of "swarm" could be "swarm" or "no swarm".
type EncounterConditionValue struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// EncounterConditionID is the ID of the condition this is a value of.
	EncounterConditionID int `db:"encounter_condition_id" ddl:"INT NOT NULL REFERENCES encounter_conditions(id)"`

	// Name is an English name of this value.
	Name string `db:"name" ddl:"VARCHAR(64) NOT NULL" text:"plaintext"`

	// IsDefault is set if this value is "default" or "normal" in some
	// sense.
	IsDefault bool `db:"is_default" ddl:"BOOLEAN NOT NULL"`
}

func (EncounterConditionValue) TableName() string { return "encounter_condition_values" }

// EncounterConditionValueMap maps encounters to the specific condition
// values under which they occur.
type EncounterConditionValueMap struct {
	// EncounterID is the ID of the encounter.
	EncounterID int `db:"encounter_id" ddl:"INT PRIMARY KEY REFERENCES encounters(id)"`

	// EncounterConditionValueID is the ID of the condition value.
	EncounterConditionValueID int `db:"encounter_condition_value_id" ddl:"INT PRIMARY KEY REFERENCES encounter_condition_values(id)"`
}

func (EncounterConditionValueMap) TableName() string { return "encounter_condition_value_map" }

// EncounterTerrain is a way the player can enter a wild encounter, e.g.
// surfing, fishing, or walking through tall grass.
type EncounterTerrain struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is an English name of this terrain.
	Name string `db:"name" ddl:"VARCHAR(64) NOT NULL" text:"plaintext"`
}

func (EncounterTerrain) TableName() string { return "encounter_terrain" }

// EncounterSlot is an abstract slot within a terrain, associated with
// both a set of conditions and a rarity. There are two encounters per
// slot, so the rarities only add up to 50.
type EncounterSlot struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// VersionGroupID is the ID of the version group this slot is in.
	VersionGroupID int `db:"version_group_id" ddl:"INT NOT NULL REFERENCES version_groups(id)"`

	// EncounterTerrainID is the ID of the terrain.
	EncounterTerrainID int `db:"encounter_terrain_id" ddl:"INT NOT NULL REFERENCES encounter_terrain(id)"`

	// Slot number; meaning unknown upstream, kept as-is.
	Slot sql.NullInt32 `db:"slot" ddl:"INT"`

	// Rarity is the chance of the encounter, presumed to be a
	// percentage. Not verified upstream; stored without rescaling.
	Rarity int `db:"rarity" ddl:"INT NOT NULL"`
}

func (EncounterSlot) TableName() string { return "encounter_slots" }

// EncounterSlotCondition is a condition that affects an encounter slot.
type EncounterSlotCondition struct {
	// EncounterSlotID is the ID of the encounter slot.
	EncounterSlotID int `db:"encounter_slot_id" ddl:"INT PRIMARY KEY REFERENCES encounter_slots(id)"`

	// EncounterConditionID is the ID of the encounter condition.
	EncounterConditionID int `db:"encounter_condition_id" ddl:"INT PRIMARY KEY REFERENCES encounter_conditions(id)"`
}

func (EncounterSlotCondition) TableName() string { return "encounter_slot_conditions" }
