package schema

// Type is an elemental type.
type Type struct {
	ID           int    `db:"id" ddl:"INT PRIMARY KEY"`
	Name         string `db:"name" ddl:"VARCHAR(8) NOT NULL"`
	Abbreviation string `db:"abbreviation" ddl:"VARCHAR(3) NOT NULL"`
	GenerationID int    `db:"generation_id" ddl:"INT NOT NULL REFERENCES generations(id)"`

	// DamageClassID is "None" for the ??? type; every other type is
	// physical or special.
	DamageClassID int `db:"damage_class_id" ddl:"INT NOT NULL REFERENCES move_damage_classes(id)"`
}

func (Type) TableName() string { return "types" }

// TypeEfficacy is the damage multiplier of one type attacking another,
// stored as a percentage: 50, 100, 200, and so on.
type TypeEfficacy struct {
	DamageTypeID int `db:"damage_type_id" ddl:"INT PRIMARY KEY REFERENCES types(id)"`
	TargetTypeID int `db:"target_type_id" ddl:"INT PRIMARY KEY REFERENCES types(id)"`
	DamageFactor int `db:"damage_factor" ddl:"INT NOT NULL"`
}

func (TypeEfficacy) TableName() string { return "type_efficacy" }

// TypeName is a non-English name of a type.
type TypeName struct {
	TypeID     int    `db:"type_id" ddl:"INT PRIMARY KEY REFERENCES types(id)"`
	LanguageID int    `db:"language_id" ddl:"INT PRIMARY KEY REFERENCES languages(id)"`
	Name       string `db:"name" ddl:"VARCHAR(16) NOT NULL"`
}

func (TypeName) TableName() string { return "type_names" }
