package schema

import "database/sql"

// EggGroup is an egg group. Usually two pokémon can breed if they share
// one (exceptions are the Ditto and No Eggs groups). The name acts as
// both the "official" English name, used by one NPC in Stadium, and a
// slug, hence the double official and identifier classification.
type EggGroup struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name of the egg group.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"identifier,official"`
}

func (EggGroup) TableName() string { return "egg_groups" }

// Generation is a generation of the game franchise.
type Generation struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// MainRegionID is the ID of the region this generation's main games
	// take place in.
	MainRegionID sql.NullInt32 `db:"main_region_id" ddl:"INT REFERENCES regions(id)"`

	// CanonicalPokedexID is the ID of the pokédex this generation's main
	// games use by default.
	CanonicalPokedexID sql.NullInt32 `db:"canonical_pokedex_id" ddl:"INT REFERENCES pokedexes(id)"`

	// Name is an English name of this generation, such as
	// "Generation IV".
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext"`
}

func (Generation) TableName() string { return "generations" }

// Language is a language the games have been translated into, except
// English.
type Language struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// ISO639 is the two-letter code of the country where this language
	// is spoken. Not unique.
	ISO639 string `db:"iso639" ddl:"VARCHAR(2) NOT NULL"`

	// ISO3166 is the two-letter code of the language. Not unique.
	ISO3166 string `db:"iso3166" ddl:"VARCHAR(2) NOT NULL"`

	// Name is the English name of the language.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext"`
}

func (Language) TableName() string { return "languages" }

// Pokedex is a regional or national listing of pokémon.
type Pokedex struct {
	ID          int            `db:"id" ddl:"INT PRIMARY KEY"`
	RegionID    sql.NullInt32  `db:"region_id" ddl:"INT REFERENCES regions(id)"`
	Name        string         `db:"name" ddl:"VARCHAR(16) NOT NULL"`
	Description sql.NullString `db:"description" ddl:"VARCHAR(512)"`
}

func (Pokedex) TableName() string { return "pokedexes" }

// PokedexVersionGroup links a pokédex to the version groups that use it.
type PokedexVersionGroup struct {
	PokedexID      int `db:"pokedex_id" ddl:"INT PRIMARY KEY REFERENCES pokedexes(id)"`
	VersionGroupID int `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
}

func (PokedexVersionGroup) TableName() string { return "pokedex_version_groups" }

// Stat is a creature stat, such as Attack or Speed.
type Stat struct {
	ID            int           `db:"id" ddl:"INT PRIMARY KEY"`
	DamageClassID sql.NullInt32 `db:"damage_class_id" ddl:"INT REFERENCES move_damage_classes(id)"`
	Name          string        `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (Stat) TableName() string { return "stats" }

// VersionGroup is a set of versions released together, such as Diamond
// and Pearl.
type VersionGroup struct {
	ID           int `db:"id" ddl:"INT PRIMARY KEY"`
	GenerationID int `db:"generation_id" ddl:"INT NOT NULL REFERENCES generations(id)"`
}

func (VersionGroup) TableName() string { return "version_groups" }

// VersionGroupRegion links a version group to the regions it covers.
type VersionGroupRegion struct {
	VersionGroupID int `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
	RegionID       int `db:"region_id" ddl:"INT PRIMARY KEY REFERENCES regions(id)"`
}

func (VersionGroupRegion) TableName() string { return "version_group_regions" }

// Version is a single released game cartridge.
type Version struct {
	ID             int    `db:"id" ddl:"INT PRIMARY KEY"`
	VersionGroupID int    `db:"version_group_id" ddl:"INT NOT NULL REFERENCES version_groups(id)"`
	Name           string `db:"name" ddl:"VARCHAR(32) NOT NULL"`
}

func (Version) TableName() string { return "versions" }
