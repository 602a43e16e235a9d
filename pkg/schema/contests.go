package schema

// ContestCombo is a combo of two moves in a contest.
type ContestCombo struct {
	// FirstMoveID is the ID of the first move in the combo.
	FirstMoveID int `db:"first_move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`

	// SecondMoveID is the ID of the second and final move in the combo.
	SecondMoveID int `db:"second_move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
}

func (ContestCombo) TableName() string { return "contest_combos" }

// ContestEffect is the effect of a move when used in a contest.
type ContestEffect struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Appeal is the base number of hearts the user of this move gets.
	Appeal int `db:"appeal" ddl:"SMALLINT NOT NULL"`

	// Jam is the base number of hearts the user's opponent loses.
	Jam int `db:"jam" ddl:"SMALLINT NOT NULL"`

	// FlavorText is the English in-game description of this effect.
	FlavorText string `db:"flavor_text" ddl:"VARCHAR(64) NOT NULL" text:"gametext,official"`

	// Effect is a detailed description of the effect.
	Effect string `db:"effect" ddl:"VARCHAR(255) NOT NULL" text:"markdown"`
}

func (ContestEffect) TableName() string { return "contest_effects" }

// ContestType is a contest type, such as "cool" or "smart". It also
// functions as berry flavor and Pokéblock color. Its name columns act as
// both official English names and slugs, hence the double official and
// identifier classification.
type ContestType struct {
	// ID is a numeric ID.
	ID int `db:"id" ddl:"INT PRIMARY KEY"`

	// Name is the English name of the contest type.
	Name string `db:"name" ddl:"VARCHAR(6) NOT NULL" text:"identifier,official"`

	// Flavor is the English name of the corresponding berry flavor.
	Flavor string `db:"flavor" ddl:"VARCHAR(6) NOT NULL" text:"identifier,official"`

	// Color is the English name of the corresponding Pokéblock color.
	Color string `db:"color" ddl:"VARCHAR(6) NOT NULL" text:"identifier,official"`
}

func (ContestType) TableName() string { return "contest_types" }

// SuperContestCombo is a combo of two moves in a Super Contest.
type SuperContestCombo struct {
	FirstMoveID  int `db:"first_move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
	SecondMoveID int `db:"second_move_id" ddl:"INT PRIMARY KEY REFERENCES moves(id)"`
}

func (SuperContestCombo) TableName() string { return "super_contest_combos" }

// SuperContestEffect is the effect of a move when used in a Super Contest.
type SuperContestEffect struct {
	ID         int    `db:"id" ddl:"INT PRIMARY KEY"`
	Appeal     int    `db:"appeal" ddl:"SMALLINT NOT NULL"`
	FlavorText string `db:"flavor_text" ddl:"VARCHAR(64) NOT NULL"`
}

func (SuperContestEffect) TableName() string { return "super_contest_effects" }
