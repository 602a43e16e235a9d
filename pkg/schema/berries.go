package schema

import "database/sql"

// Berry is a consumable item that grows on trees. Data common to all
// items, such as the name, lives on the corresponding Item row.
type Berry struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// ItemID is the ID of the item this berry corresponds to.
	ItemID int `db:"item_id" ddl:"INT NOT NULL REFERENCES items(id)"`

	// FirmnessID is the ID of this berry's firmness level.
	FirmnessID int `db:"firmness_id" ddl:"INT NOT NULL REFERENCES berry_firmness(id)"`

	// NaturalGiftPower is the power of Natural Gift when used with this
	// berry.
	NaturalGiftPower sql.NullInt32 `db:"natural_gift_power" ddl:"INT"`

	// NaturalGiftTypeID is the ID of the type Natural Gift has when used
	// with this berry.
	NaturalGiftTypeID sql.NullInt32 `db:"natural_gift_type_id" ddl:"INT REFERENCES types(id)"`

	// Size of this berry, in millimeters.
	Size int `db:"size" ddl:"INT NOT NULL"`

	// MaxHarvest is the maximum number of these berries that can grow on
	// one tree.
	MaxHarvest int `db:"max_harvest" ddl:"INT NOT NULL"`

	// GrowthTime it takes the tree to grow one stage, in hours. Multiply
	// by four to get overall time.
	GrowthTime int `db:"growth_time" ddl:"INT NOT NULL"`

	// SoilDryness is the speed of soil drying the tree causes. The exact
	// meaning is undocumented upstream; kept as an opaque integer.
	SoilDryness int `db:"soil_dryness" ddl:"INT NOT NULL"`

	// Smoothness of this berry, a culinary attribute. Higher is better.
	Smoothness int `db:"smoothness" ddl:"INT NOT NULL"`
}

func (Berry) TableName() string { return "berries" }

// BerryFirmness is a berry firmness level, such as "hard" or "very soft".
type BerryFirmness struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is the English name of the firmness level.
	Name string `db:"name" ddl:"VARCHAR(10) NOT NULL" text:"plaintext,official"`
}

func (BerryFirmness) TableName() string { return "berry_firmness" }

// BerryFlavor is a berry flavor level.
type BerryFlavor struct {
	// BerryID is the ID of the berry.
	BerryID int `db:"berry_id" ddl:"INT PRIMARY KEY REFERENCES berries(id)"`

	// ContestTypeID is the ID of the flavor.
	ContestTypeID int `db:"contest_type_id" ddl:"INT PRIMARY KEY REFERENCES contest_types(id)"`

	// Flavor is the level of the flavor in the berry.
	Flavor int `db:"flavor" ddl:"INT NOT NULL"`
}

func (BerryFlavor) TableName() string { return "berry_flavors" }
