package schema

import (
	"database/sql"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes forme names for display, word by word.
var titleCaser = cases.Title(language.English)

// Pokemon is the core of this whole mess.
//
// Both "forme" and "form" appear in the schema. "Forme" refers
// specifically to variants that are distinct species in battle terms,
// with different stats or movesets; "form" is the general term covering
// any variation within a species, including purely cosmetic forms like
// Unown.
type Pokemon struct {
	ID                  int            `db:"id" ddl:"INT PRIMARY KEY"`
	Name                string         `db:"name" ddl:"VARCHAR(20) NOT NULL"`
	FormeName           sql.NullString `db:"forme_name" ddl:"VARCHAR(16)"`
	FormeBasePokemonID  sql.NullInt32  `db:"forme_base_pokemon_id" ddl:"INT REFERENCES pokemon(id)"`
	GenerationID        sql.NullInt32  `db:"generation_id" ddl:"INT REFERENCES generations(id)"`
	EvolutionChainID    sql.NullInt32  `db:"evolution_chain_id" ddl:"INT REFERENCES evolution_chains(id)"`
	Height              int            `db:"height" ddl:"INT NOT NULL"`
	Weight              int            `db:"weight" ddl:"INT NOT NULL"`
	Species             string         `db:"species" ddl:"VARCHAR(16) NOT NULL"`
	ColorID             int            `db:"color_id" ddl:"INT NOT NULL REFERENCES pokemon_colors(id)"`
	PokemonShapeID      sql.NullInt32  `db:"pokemon_shape_id" ddl:"INT REFERENCES pokemon_shapes(id)"`
	HabitatID           sql.NullInt32  `db:"habitat_id" ddl:"INT REFERENCES pokemon_habitats(id)"`
	GenderRate          int            `db:"gender_rate" ddl:"INT NOT NULL"`
	CaptureRate         int            `db:"capture_rate" ddl:"INT NOT NULL"`
	BaseExperience      int            `db:"base_experience" ddl:"INT NOT NULL"`
	BaseHappiness       int            `db:"base_happiness" ddl:"INT NOT NULL"`
	IsBaby              bool           `db:"is_baby" ddl:"BOOLEAN NOT NULL"`
	HatchCounter        int            `db:"hatch_counter" ddl:"INT NOT NULL"`
	HasGen4FemSprite    bool           `db:"has_gen4_fem_sprite" ddl:"BOOLEAN NOT NULL"`
	HasGen4FemBackSprite bool          `db:"has_gen4_fem_back_sprite" ddl:"BOOLEAN NOT NULL"`
}

func (Pokemon) TableName() string { return "pokemon" }

// NationalID returns the National Pokédex number for this pokémon. Use
// this instead of ID directly; alternate formes make the raw ID
// incorrect.
func (p Pokemon) NationalID() int {
	if p.FormeBasePokemonID.Valid {
		return int(p.FormeBasePokemonID.Int32)
	}
	return p.ID
}

// FullName returns the name of this pokémon, including its forme if it
// has one, e.g. "Sandy Wormadam".
func (p Pokemon) FullName() string {
	if p.FormeName.Valid && p.FormeName.String != "" {
		return titleCaser.String(p.FormeName.String) + " " + p.Name
	}
	return p.Name
}

// PokemonAbility links a pokémon to one of its abilities. Slot orders
// abilities for display; it is part of the key.
type PokemonAbility struct {
	PokemonID int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	AbilityID int `db:"ability_id" ddl:"INT NOT NULL REFERENCES abilities(id)"`
	Slot      int `db:"slot" ddl:"INT PRIMARY KEY"`
}

func (PokemonAbility) TableName() string { return "pokemon_abilities" }

// PokemonColor is one of the ten body colors the Pokédex sorts by.
type PokemonColor struct {
	ID   int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name string `db:"name" ddl:"VARCHAR(6) NOT NULL"`
}

func (PokemonColor) TableName() string { return "pokemon_colors" }

// PokemonDexNumber is a pokémon's number in a regional pokédex.
type PokemonDexNumber struct {
	PokemonID     int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	PokedexID     int `db:"pokedex_id" ddl:"INT PRIMARY KEY REFERENCES pokedexes(id)"`
	PokedexNumber int `db:"pokedex_number" ddl:"INT NOT NULL"`
}

func (PokemonDexNumber) TableName() string { return "pokemon_dex_numbers" }

// PokemonEggGroup links a pokémon to an egg group.
type PokemonEggGroup struct {
	PokemonID  int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	EggGroupID int `db:"egg_group_id" ddl:"INT PRIMARY KEY REFERENCES egg_groups(id)"`
}

func (PokemonEggGroup) TableName() string { return "pokemon_egg_groups" }

// PokemonFlavorText is the in-game Pokédex text of a pokémon, per
// version.
type PokemonFlavorText struct {
	PokemonID  int    `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	VersionID  int    `db:"version_id" ddl:"INT PRIMARY KEY REFERENCES versions(id)"`
	FlavorText string `db:"flavor_text" ddl:"VARCHAR(255) NOT NULL"`
}

func (PokemonFlavorText) TableName() string { return "pokemon_flavor_text" }

// PokemonFormGroup describes the set of forms a base pokémon has.
type PokemonFormGroup struct {
	PokemonID    int    `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	IsBattleOnly bool   `db:"is_battle_only" ddl:"BOOLEAN NOT NULL"`
	Description  string `db:"description" ddl:"VARCHAR(1024) NOT NULL" text:"markdown"`
}

func (PokemonFormGroup) TableName() string { return "pokemon_form_groups" }

// PokemonFormSprite is a single form's sprite within a version group.
type PokemonFormSprite struct {
	ID                          int            `db:"id" ddl:"INT PRIMARY KEY"`
	PokemonID                   int            `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	IntroducedInVersionGroupID  int            `db:"introduced_in_version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
	Name                        sql.NullString `db:"name" ddl:"VARCHAR(16)"`
	IsDefault                   sql.NullBool   `db:"is_default" ddl:"BOOLEAN"`
}

func (PokemonFormSprite) TableName() string { return "pokemon_form_sprites" }

// PokemonHabitat is a habitat classification from the FireRed/LeafGreen
// pokédex.
type PokemonHabitat struct {
	ID   int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (PokemonHabitat) TableName() string { return "pokemon_habitats" }

// PokemonInternalID is the internal ID number a generation's games use
// for a pokémon.
type PokemonInternalID struct {
	PokemonID    int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	GenerationID int `db:"generation_id" ddl:"INT PRIMARY KEY REFERENCES generations(id)"`
	InternalID   int `db:"internal_id" ddl:"INT NOT NULL"`
}

func (PokemonInternalID) TableName() string { return "pokemon_internal_ids" }

// PokemonItem is an item a wild pokémon may be holding when caught.
// Rarity is presumed to be a percentage; not verified upstream.
type PokemonItem struct {
	PokemonID int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	VersionID int `db:"version_id" ddl:"INT PRIMARY KEY REFERENCES versions(id)"`
	ItemID    int `db:"item_id" ddl:"INT PRIMARY KEY REFERENCES items(id)"`
	Rarity    int `db:"rarity" ddl:"INT NOT NULL"`
}

func (PokemonItem) TableName() string { return "pokemon_items" }

// PokemonMove is a move a pokémon can learn. Level participates in the
// key even though it is absent for non-level-up methods; this mirrors
// the source data.
type PokemonMove struct {
	PokemonID           int           `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	VersionGroupID      int           `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
	MoveID              int           `db:"move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
	PokemonMoveMethodID int           `db:"pokemon_move_method_id" ddl:"INT PRIMARY KEY REFERENCES pokemon_move_methods(id)"`
	Level               int           `db:"level" ddl:"INT PRIMARY KEY"`
	Order               sql.NullInt32 `db:"order" ddl:"INT"`
}

func (PokemonMove) TableName() string { return "pokemon_moves" }

// PokemonMoveMethod is a way a pokémon can learn moves: level up, egg,
// tutor, machine.
type PokemonMoveMethod struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name        string `db:"name" ddl:"VARCHAR(64) NOT NULL"`
	Description string `db:"description" ddl:"VARCHAR(255) NOT NULL"`
}

func (PokemonMoveMethod) TableName() string { return "pokemon_move_methods" }

// PokemonName is a non-English name of a pokémon.
type PokemonName struct {
	PokemonID  int    `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	LanguageID int    `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`
	Name       string `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (PokemonName) TableName() string { return "pokemon_names" }

// PokemonShape is a body shape classification.
type PokemonShape struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name        string `db:"name" ddl:"VARCHAR(24) NOT NULL"`
	AwesomeName string `db:"awesome_name" ddl:"VARCHAR(16) NOT NULL"`
}

func (PokemonShape) TableName() string { return "pokemon_shapes" }

// PokemonStat is one base stat value of a pokémon.
type PokemonStat struct {
	PokemonID int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	StatID    int `db:"stat_id" ddl:"INT PRIMARY KEY REFERENCES stats(id)"`
	BaseStat  int `db:"base_stat" ddl:"INT NOT NULL"`
	Effort    int `db:"effort" ddl:"INT NOT NULL"`
}

func (PokemonStat) TableName() string { return "pokemon_stats" }

// PokemonType links a pokémon to one of its types. Slot orders types
// for display; it is part of the key.
type PokemonType struct {
	PokemonID int `db:"pokemon_id" ddl:"INT PRIMARY KEY REFERENCES pokemon(id)"`
	TypeID    int `db:"type_id" ddl:"INT NOT NULL REFERENCES types(id)"`
	Slot      int `db:"slot" ddl:"INT PRIMARY KEY"`
}

func (PokemonType) TableName() string { return "pokemon_types" }
