package schema

import (
	"fmt"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags. Tables
// with more than one PRIMARY KEY column get a table-level constraint
// instead of inline markers. Column names are quoted; some of them,
// like pokemon_moves.order, are reserved words.
func generateDDL(m Model) string {
	cols := Columns(m)

	var pk []string
	for _, col := range cols {
		if col.PrimaryKey {
			pk = append(pk, QuoteColumn(col.Name))
		}
	}
	composite := len(pk) > 1

	var lines []string
	for _, col := range cols {
		ddl := ddlTagFor(m, col.FieldIndex)
		if composite {
			ddl = strings.Replace(ddl, " PRIMARY KEY", "", 1)
		}
		lines = append(lines,
			fmt.Sprintf("    %s %s", QuoteColumn(col.Name), ddl))
	}
	if composite {
		lines = append(lines, fmt.Sprintf("    PRIMARY KEY (%s)", strings.Join(pk, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		m.TableName(),
		strings.Join(lines, ",\n"))
}

func ddlTagFor(m Model, fieldIndex int) string {
	t := typeOf(m)
	return t.Field(fieldIndex).Tag.Get("ddl")
}

// QuoteColumn wraps a column name in double quotes for use in SQL.
// Works for both PostgreSQL and SQLite.
func QuoteColumn(name string) string {
	return `"` + name + `"`
}

// TableDDL returns the CREATE TABLE statement for a model.
func TableDDL(m Model) string {
	return generateDDL(m)
}

// tableIndexes lists extra indexes beyond primary keys, for the tables
// that get traversed by non-key columns.
var tableIndexes = map[string][]string{
	"pokemon": {
		"CREATE INDEX idx_pokemon_forme_base ON pokemon(forme_base_pokemon_id);",
		"CREATE INDEX idx_pokemon_evolution_chain ON pokemon(evolution_chain_id);",
	},
	"pokemon_moves": {
		"CREATE INDEX idx_pokemon_moves_pokemon ON pokemon_moves(pokemon_id);",
		"CREATE INDEX idx_pokemon_moves_move ON pokemon_moves(move_id);",
		"CREATE INDEX idx_pokemon_moves_version_group ON pokemon_moves(version_group_id);",
		"CREATE INDEX idx_pokemon_moves_method ON pokemon_moves(pokemon_move_method_id);",
	},
	"encounters": {
		"CREATE INDEX idx_encounters_pokemon ON encounters(pokemon_id);",
		"CREATE INDEX idx_encounters_location_area ON encounters(location_area_id);",
		"CREATE INDEX idx_encounters_version ON encounters(version_id);",
	},
	"machines": {
		"CREATE INDEX idx_machines_move ON machines(move_id);",
	},
	"moves": {
		"CREATE INDEX idx_moves_type ON moves(type_id);",
	},
}

// IndexDDL returns CREATE INDEX statements for a model. Most tables
// have none.
func IndexDDL(m Model) []string {
	return tableIndexes[m.TableName()]
}
