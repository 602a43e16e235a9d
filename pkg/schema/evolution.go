package schema

import "database/sql"

// EvolutionChain is a family of pokémon linked by evolution.
type EvolutionChain struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// GrowthRateID is the ID of the growth rate for this family.
	GrowthRateID int `db:"growth_rate_id" ddl:"INT NOT NULL REFERENCES growth_rates(id)"`

	// BabyTriggerItemID is the item a parent must hold while breeding to
	// produce a baby.
	BabyTriggerItemID sql.NullInt32 `db:"baby_trigger_item_id" ddl:"INT REFERENCES items(id)"`
}

func (EvolutionChain) TableName() string { return "evolution_chains" }

// EvolutionTrigger is an evolution type, such as "level" or "trade".
type EvolutionTrigger struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Identifier is an English identifier.
	Identifier string `db:"identifier" ddl:"VARCHAR(16) NOT NULL" text:"identifier"`
}

func (EvolutionTrigger) TableName() string { return "evolution_triggers" }

// PokemonEvolution describes how one pokémon evolves into another,
// including every requirement the games attach to the step.
type PokemonEvolution struct {
	FromPokemonID         int            `db:"from_pokemon_id" ddl:"INT NOT NULL REFERENCES pokemon(id)"`
	ToPokemonID           int            `db:"to_pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	EvolutionTriggerID    int            `db:"evolution_trigger_id" ddl:"INT NOT NULL REFERENCES evolution_triggers(id)"`
	TriggerItemID         sql.NullInt32  `db:"trigger_item_id" ddl:"INT REFERENCES items(id)"`
	MinimumLevel          sql.NullInt32  `db:"minimum_level" ddl:"INT"`
	Gender                sql.NullString `db:"gender" ddl:"VARCHAR(6)" enum:"male,female"`
	LocationID            sql.NullInt32  `db:"location_id" ddl:"INT REFERENCES locations(id)"`
	HeldItemID            sql.NullInt32  `db:"held_item_id" ddl:"INT REFERENCES items(id)"`
	TimeOfDay             sql.NullString `db:"time_of_day" ddl:"VARCHAR(7)" enum:"morning,day,night"`
	KnownMoveID           sql.NullInt32  `db:"known_move_id" ddl:"INT REFERENCES moves(id)"`
	MinimumHappiness      sql.NullInt32  `db:"minimum_happiness" ddl:"INT"`
	MinimumBeauty         sql.NullInt32  `db:"minimum_beauty" ddl:"INT"`
	RelativePhysicalStats sql.NullInt32  `db:"relative_physical_stats" ddl:"INT"`
	PartyPokemonID        sql.NullInt32  `db:"party_pokemon_id" ddl:"INT REFERENCES pokemon(id)"`
}

func (PokemonEvolution) TableName() string { return "pokemon_evolution" }

// Experience is the EXP needed for a certain level with a certain growth
// rate.
type Experience struct {
	// GrowthRateID is the ID of the growth rate.
	GrowthRateID int `db:"growth_rate_id" ddl:"INT PRIMARY KEY REFERENCES growth_rates(id)"`

	// Level is the pokémon level.
	Level int `db:"level" ddl:"INT PRIMARY KEY"`

	// Experience is the number of EXP points needed to get to the level.
	Experience int `db:"experience" ddl:"INT NOT NULL"`
}

func (Experience) TableName() string { return "experience" }

// GrowthRate is the growth rate of a pokémon, i.e. the EXP-to-level
// function.
type GrowthRate struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is a name for the growth rate.
	Name string `db:"name" ddl:"VARCHAR(20) NOT NULL" text:"identifier"`

	// Formula is the EXP formula.
	Formula string `db:"formula" ddl:"VARCHAR(500) NOT NULL" text:"latex"`
}

func (GrowthRate) TableName() string { return "growth_rates" }
