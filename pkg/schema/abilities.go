package schema

// Ability is an ability a pokémon can have, such as Static or Pressure.
type Ability struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is the official English name of this ability.
	Name string `db:"name" ddl:"VARCHAR(24) NOT NULL" text:"plaintext,official"`

	// GenerationID is the ID of the generation this ability was
	// introduced in.
	GenerationID int `db:"generation_id" ddl:"INT NOT NULL REFERENCES generations(id)"`

	// Effect is a detailed description of this ability's effect.
	Effect string `db:"effect" ddl:"VARCHAR(5120) NOT NULL" text:"markdown"`

	// ShortEffect is a short summary of this ability's effect.
	ShortEffect string `db:"short_effect" ddl:"VARCHAR(255) NOT NULL" text:"markdown"`
}

func (Ability) TableName() string { return "abilities" }

// AbilityFlavorText is the in-game flavor text of an ability.
type AbilityFlavorText struct {
	// AbilityID is the ID of the ability.
	AbilityID int `db:"ability_id" ddl:"INT PRIMARY KEY REFERENCES abilities(id)"`

	// VersionGroupID is the version group this flavor text is shown in.
	VersionGroupID int `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`

	// FlavorText is the actual flavor text.
	FlavorText string `db:"flavor_text" ddl:"VARCHAR(64) NOT NULL" text:"gametext,official"`
}

func (AbilityFlavorText) TableName() string { return "ability_flavor_text" }

// AbilityName is a non-English official name of an ability.
type AbilityName struct {
	// AbilityID is the ID of the ability.
	AbilityID int `db:"ability_id" ddl:"INT PRIMARY KEY REFERENCES abilities(id)"`

	// LanguageID is the ID of the language.
	LanguageID int `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`

	// Name is the name of the ability in this language.
	Name string `db:"name" ddl:"VARCHAR(16) NOT NULL" text:"plaintext,official,foreign"`
}

func (AbilityName) TableName() string { return "ability_names" }
