package schema

// Nature is a personality trait that nudges two stats in opposite
// directions and bestows taste preferences.
type Nature struct {
	ID              int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name            string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
	DecreasedStatID int    `db:"decreased_stat_id" ddl:"INT NOT NULL REFERENCES stats(id)"`
	IncreasedStatID int    `db:"increased_stat_id" ddl:"INT NOT NULL REFERENCES stats(id)"`
	HatesFlavorID   int    `db:"hates_flavor_id" ddl:"INT NOT NULL REFERENCES contest_types(id)"`
	LikesFlavorID   int    `db:"likes_flavor_id" ddl:"INT NOT NULL REFERENCES contest_types(id)"`
}

func (Nature) TableName() string { return "natures" }

// IsNeutral reports whether this nature alters no stats. Neutral natures
// point their increased and decreased stat at the same row.
func (n Nature) IsNeutral() bool {
	return n.IncreasedStatID == n.DecreasedStatID
}

// NatureBattleStylePreference records how likely a pokémon with a nature
// is to use a battle style in the Battle Palace.
type NatureBattleStylePreference struct {
	NatureID          int `db:"nature_id" ddl:"INT PRIMARY KEY REFERENCES natures(id)"`
	MoveBattleStyleID int `db:"move_battle_style_id" ddl:"INT PRIMARY KEY REFERENCES move_battle_styles(id)"`
	LowHPPreference   int `db:"low_hp_preference" ddl:"INT NOT NULL"`
	HighHPPreference  int `db:"high_hp_preference" ddl:"INT NOT NULL"`
}

func (NatureBattleStylePreference) TableName() string { return "nature_battle_style_preferences" }

// NatureName is a non-English name of a nature.
type NatureName struct {
	NatureID   int    `db:"nature_id" ddl:"INT PRIMARY KEY REFERENCES natures(id)"`
	LanguageID int    `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`
	Name       string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
}

func (NatureName) TableName() string { return "nature_names" }

// NaturePokeathlonStat is the effect of a nature on a Pokéathlon stat.
type NaturePokeathlonStat struct {
	NatureID         int `db:"nature_id" ddl:"INT PRIMARY KEY REFERENCES natures(id)"`
	PokeathlonStatID int `db:"pokeathlon_stat_id" ddl:"INT PRIMARY KEY REFERENCES pokeathlon_stats(id)"`
	MaxChange        int `db:"max_change" ddl:"INT NOT NULL"`
}

func (NaturePokeathlonStat) TableName() string { return "nature_pokeathlon_stats" }

// PokeathlonStat is one of the five Pokéathlon stats.
type PokeathlonStat struct {
	ID   int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
}

func (PokeathlonStat) TableName() string { return "pokeathlon_stats" }
