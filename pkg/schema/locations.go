package schema

import "database/sql"

// Location is a named place a player can visit.
type Location struct {
	ID       int           `db:"id" ddl:"INT PRIMARY KEY"`
	RegionID sql.NullInt32 `db:"region_id" ddl:"INT REFERENCES regions(id)"`
	Name     string        `db:"name" ddl:"VARCHAR(64) NOT NULL"`
}

func (Location) TableName() string { return "locations" }

// LocationArea is a distinct section of a location, e.g. a cave floor.
type LocationArea struct {
	ID         int            `db:"id" ddl:"INT PRIMARY KEY"`
	LocationID int            `db:"location_id" ddl:"INT NOT NULL REFERENCES locations(id)"`
	InternalID int            `db:"internal_id" ddl:"INT NOT NULL"`
	Name       sql.NullString `db:"name" ddl:"VARCHAR(64)"`
}

func (LocationArea) TableName() string { return "location_areas" }

// LocationAreaEncounterRate is the base encounter rate for a terrain
// within an area in a version.
type LocationAreaEncounterRate struct {
	LocationAreaID     int           `db:"location_area_id" ddl:"INT PRIMARY KEY REFERENCES location_areas(id)"`
	EncounterTerrainID int           `db:"encounter_terrain_id" ddl:"INT PRIMARY KEY REFERENCES encounter_terrain(id)"`
	VersionID          int           `db:"version_id" ddl:"INT PRIMARY KEY REFERENCES versions(id)"`
	Rate               sql.NullInt32 `db:"rate" ddl:"INT"`
}

func (LocationAreaEncounterRate) TableName() string { return "location_area_encounter_rates" }

// LocationInternalID is the internal ID number a game uses for a
// location.
type LocationInternalID struct {
	LocationID   int `db:"location_id" ddl:"INT PRIMARY KEY REFERENCES locations(id)"`
	GenerationID int `db:"generation_id" ddl:"INT PRIMARY KEY REFERENCES generations(id)"`
	InternalID   int `db:"internal_id" ddl:"INT NOT NULL"`
}

func (LocationInternalID) TableName() string { return "location_internal_ids" }

// Region is a major area of the world: Kanto, Johto, etc.
type Region struct {
	ID   int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (Region) TableName() string { return "regions" }
