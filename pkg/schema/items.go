package schema

import "database/sql"

// Item is an item from the games, like "Poké Ball" or "Bicycle".
type Item struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is the English name of the item.
	Name string `db:"name" ddl:"VARCHAR(20) NOT NULL" text:"plaintext,official"`

	// CategoryID is the ID of the category this item belongs to.
	CategoryID int `db:"category_id" ddl:"INT NOT NULL REFERENCES item_categories(id)"`

	// Cost of the item when bought. Items sell for half this price.
	Cost int `db:"cost" ddl:"INT NOT NULL"`

	// FlingPower is the power of the move Fling when used with this item.
	FlingPower sql.NullInt32 `db:"fling_power" ddl:"INT"`

	// FlingEffectID is the ID of the fling effect of the move Fling when
	// used with this item. These are distinct from move effects.
	FlingEffectID sql.NullInt32 `db:"fling_effect_id" ddl:"INT REFERENCES item_fling_effects(id)"`

	// Effect is a detailed English description of the item's effect.
	Effect string `db:"effect" ddl:"VARCHAR(5120) NOT NULL" text:"markdown"`
}

func (Item) TableName() string { return "items" }

// ItemCategory is a fan-curated item category.
type ItemCategory struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// PocketID is the ID of the pocket these items go to.
	PocketID int `db:"pocket_id" ddl:"INT NOT NULL REFERENCES item_pockets(id)"`

	// Name is the English name of the category.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext"`
}

func (ItemCategory) TableName() string { return "item_categories" }

// ItemFlag is an item attribute such as "consumable" or "holdable".
type ItemFlag struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Identifier of the flag.
	Identifier string `db:"identifier" ddl:"VARCHAR(24) NOT NULL" text:"identifier"`

	// Name is a short English description of the flag.
	Name string `db:"name" ddl:"VARCHAR(64) NOT NULL" text:"plaintext"`
}

func (ItemFlag) TableName() string { return "item_flags" }

// ItemFlagMap maps an item flag to its item.
type ItemFlagMap struct {
	// ItemID is the ID of the item.
	ItemID int `db:"item_id" ddl:"INT PRIMARY KEY REFERENCES items(id)"`

	// ItemFlagID is the ID of the item flag.
	ItemFlagID int `db:"item_flag_id" ddl:"INT PRIMARY KEY REFERENCES item_flags(id)"`
}

func (ItemFlagMap) TableName() string { return "item_flag_map" }

// ItemFlavorText is an in-game description of an item.
type ItemFlavorText struct {
	// ItemID is the ID of the item.
	ItemID int `db:"item_id" ddl:"INT PRIMARY KEY REFERENCES items(id)"`

	// VersionGroupID is the ID of the version group that sports this
	// text.
	VersionGroupID int `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`

	// FlavorText is the flavor text itself.
	FlavorText string `db:"flavor_text" ddl:"VARCHAR(255) NOT NULL" text:"gametext,official"`
}

func (ItemFlavorText) TableName() string { return "item_flavor_text" }

// ItemFlingEffect is an effect of the move Fling when used with a
// specific item.
type ItemFlingEffect struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Effect is the English description of the effect.
	Effect string `db:"effect" ddl:"VARCHAR(255) NOT NULL" text:"plaintext"`
}

func (ItemFlingEffect) TableName() string { return "item_fling_effects" }

// ItemInternalID is the internal ID number a game uses for an item.
type ItemInternalID struct {
	// ItemID is the database ID of the item.
	ItemID int `db:"item_id" ddl:"INT PRIMARY KEY REFERENCES items(id)"`

	// GenerationID is the ID of the generation of games.
	GenerationID int `db:"generation_id" ddl:"INT PRIMARY KEY REFERENCES generations(id)"`

	// InternalID of the item in the generation.
	InternalID int `db:"internal_id" ddl:"INT NOT NULL"`
}

func (ItemInternalID) TableName() string { return "item_internal_ids" }

// ItemName is a non-English name of an item.
type ItemName struct {
	// ItemID is the ID of the item.
	ItemID int `db:"item_id" ddl:"INT PRIMARY KEY REFERENCES items(id)"`

	// LanguageID is the ID of the language.
	LanguageID int `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`

	// Name of the item in this language.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext,foreign"`
}

func (ItemName) TableName() string { return "item_names" }

// ItemPocket is a pocket that categorizes items.
type ItemPocket struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Identifier of this pocket.
	Identifier string `db:"identifier" ddl:"VARCHAR(16) NOT NULL" text:"identifier"`

	// Name is the English name of this pocket.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext"`
}

func (ItemPocket) TableName() string { return "item_pockets" }
