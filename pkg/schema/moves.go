package schema

import "database/sql"

// Machine is a TM or HM, i.e. an item that teaches a move.
type Machine struct {
	MachineNumber  int `db:"machine_number" ddl:"INT PRIMARY KEY"`
	VersionGroupID int `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
	ItemID         int `db:"item_id" ddl:"INT NOT NULL REFERENCES items(id)"`
	MoveID         int `db:"move_id" ddl:"INT NOT NULL REFERENCES moves(id)"`
}

func (Machine) TableName() string { return "machines" }

// IsHM reports whether this machine is an HM. HMs occupy machine numbers
// 100 and up.
func (m Machine) IsHM() bool {
	return m.MachineNumber >= 100
}

// MoveBattleStyle is a battle style such as "attack" or "support".
type MoveBattleStyle struct {
	ID   int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
}

func (MoveBattleStyle) TableName() string { return "move_battle_styles" }

// MoveEffectCategory is a broad category of move effects.
type MoveEffectCategory struct {
	ID            int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name          string `db:"name" ddl:"VARCHAR(64) NOT NULL"`
	CanAffectUser bool   `db:"can_affect_user" ddl:"BOOLEAN NOT NULL"`
}

func (MoveEffectCategory) TableName() string { return "move_effect_categories" }

// MoveEffectCategoryMap links a move effect to its categories. The
// affects-user column is part of the key in the source data and carries
// payload meaning at the same time.
type MoveEffectCategoryMap struct {
	MoveEffectID         int  `db:"move_effect_id" ddl:"INT PRIMARY KEY REFERENCES move_effects(id)"`
	MoveEffectCategoryID int  `db:"move_effect_category_id" ddl:"INT PRIMARY KEY REFERENCES move_effect_categories(id)"`
	AffectsUser          bool `db:"affects_user" ddl:"BOOLEAN PRIMARY KEY"`
}

func (MoveEffectCategoryMap) TableName() string { return "move_effect_category_map" }

// MoveDamageClass is a damage class: physical, special, or the class
// named "None" used by non-damaging moves.
type MoveDamageClass struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name        string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
	Description string `db:"description" ddl:"VARCHAR(64) NOT NULL"`
}

func (MoveDamageClass) TableName() string { return "move_damage_classes" }

// MoveEffect is the mechanical effect of one or more moves.
type MoveEffect struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	ShortEffect string `db:"short_effect" ddl:"VARCHAR(256) NOT NULL"`
	Effect      string `db:"effect" ddl:"VARCHAR(5120) NOT NULL"`
}

func (MoveEffect) TableName() string { return "move_effects" }

// MoveFlag links a move to one of its flags.
type MoveFlag struct {
	MoveID         int `db:"move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
	MoveFlagTypeID int `db:"move_flag_type_id" ddl:"INT PRIMARY KEY REFERENCES move_flag_types(id)"`
}

func (MoveFlag) TableName() string { return "move_flags" }

// MoveFlagType is a move attribute such as "makes contact".
type MoveFlagType struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	Identifier  string `db:"identifier" ddl:"VARCHAR(16) NOT NULL" text:"identifier"`
	Name        string `db:"name" ddl:"VARCHAR(32) NOT NULL"`
	Description string `db:"description" ddl:"VARCHAR(128) NOT NULL" text:"markdown"`
}

func (MoveFlagType) TableName() string { return "move_flag_types" }

// MoveFlavorText is the in-game flavor text of a move.
type MoveFlavorText struct {
	MoveID         int    `db:"move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
	VersionGroupID int    `db:"version_group_id" ddl:"INT PRIMARY KEY REFERENCES version_groups(id)"`
	FlavorText     string `db:"flavor_text" ddl:"VARCHAR(255) NOT NULL"`
}

func (MoveFlavorText) TableName() string { return "move_flavor_text" }

// MoveName is a non-English name of a move.
type MoveName struct {
	MoveID     int    `db:"move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
	LanguageID int    `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`
	Name       string `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (MoveName) TableName() string { return "move_names" }

// MoveTarget describes whom a move can hit.
type MoveTarget struct {
	ID          int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name        string `db:"name" ddl:"VARCHAR(32) NOT NULL"`
	Description string `db:"description" ddl:"VARCHAR(128) NOT NULL"`
}

func (MoveTarget) TableName() string { return "move_targets" }

// Move is a battle move.
type Move struct {
	ID                   int           `db:"id" ddl:"INT PRIMARY KEY"`
	Name                 string        `db:"name" ddl:"VARCHAR(24) NOT NULL"`
	GenerationID         int           `db:"generation_id" ddl:"INT NOT NULL REFERENCES generations(id)"`
	TypeID               int           `db:"type_id" ddl:"INT NOT NULL REFERENCES types(id)"`
	Power                int           `db:"power" ddl:"SMALLINT NOT NULL"`
	PP                   int           `db:"pp" ddl:"SMALLINT NOT NULL"`
	Accuracy             sql.NullInt16 `db:"accuracy" ddl:"SMALLINT"`
	Priority             int           `db:"priority" ddl:"SMALLINT NOT NULL"`
	TargetID             int           `db:"target_id" ddl:"INT NOT NULL REFERENCES move_targets(id)"`
	DamageClassID        int           `db:"damage_class_id" ddl:"INT NOT NULL REFERENCES move_damage_classes(id)"`
	EffectID             int           `db:"effect_id" ddl:"INT NOT NULL REFERENCES move_effects(id)"`
	EffectChance         sql.NullInt32 `db:"effect_chance" ddl:"INT"`
	ContestTypeID        sql.NullInt32 `db:"contest_type_id" ddl:"INT REFERENCES contest_types(id)"`
	ContestEffectID      sql.NullInt32 `db:"contest_effect_id" ddl:"INT REFERENCES contest_effects(id)"`
	SuperContestEffectID sql.NullInt32 `db:"super_contest_effect_id" ddl:"INT REFERENCES super_contest_effects(id)"`
}

func (Move) TableName() string { return "moves" }
