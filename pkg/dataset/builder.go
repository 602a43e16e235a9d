// Package dataset assembles loaded rows into an immutable, indexed
// snapshot of the Pokédex.
//
// A Builder accepts rows in any order, validating length, nullability
// and enum constraints as they arrive. Foreign keys are resolved only
// at Build time, so self-referential and forward references are fine
// during the load. Build rejects orphaned references, builds the
// reverse indexes, and freezes the result; after that the Dataset is
// safe for any number of concurrent readers.
package dataset

import (
	"database/sql"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/dexdata/dexdb/pkg/schema"
)

// Builder accumulates rows for a Dataset.
type Builder struct {
	rows   map[string][]schema.Model
	keys   map[string]map[string]struct{}
	frozen bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		rows: make(map[string][]schema.Model),
		keys: make(map[string]map[string]struct{}),
	}
}

// Add validates rows and stores them for Build. Violations reject the
// offending row and leave previously added rows intact.
func (b *Builder) Add(models ...schema.Model) error {
	if b.frozen {
		return frozenError()
	}

	for _, m := range models {
		if err := b.add(m); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) add(m schema.Model) error {
	table := m.TableName()
	cols := schema.Columns(m)

	v := reflect.ValueOf(m)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var keyParts []string
	for _, col := range cols {
		val, isNull := columnValue(v.Field(col.FieldIndex))

		if isNull && !col.Nullable {
			return nullError(table, col.Name)
		}
		if s, ok := val.(string); ok && !isNull {
			if col.MaxLen > 0 && len([]rune(s)) > col.MaxLen {
				return lengthError(table, col.Name, col.MaxLen, len([]rune(s)))
			}
			if col.Enum != nil && !contains(col.Enum, s) {
				return enumError(table, col.Name, s)
			}
		}
		if col.PrimaryKey {
			keyParts = append(keyParts, fmt.Sprintf("%v", val))
		}
	}

	key := strings.Join(keyParts, "|")
	if b.keys[table] == nil {
		b.keys[table] = make(map[string]struct{})
	}
	if _, ok := b.keys[table][key]; ok {
		return duplicateKeyError(table, key)
	}
	b.keys[table][key] = struct{}{}

	b.rows[table] = append(b.rows[table], deref(m))
	return nil
}

// Build resolves deferred foreign keys, verifies the forme invariant,
// builds indexes, and freezes the builder. On error the builder keeps
// its rows and stays usable.
func (b *Builder) Build() (*Dataset, error) {
	if err := b.checkOrphans(); err != nil {
		return nil, err
	}

	d := newDataset(b.rows)

	// The base form of a form must itself not have a base form.
	for _, p := range d.pokemon {
		if !p.FormeBasePokemonID.Valid {
			continue
		}
		base := d.pokemon[int(p.FormeBasePokemonID.Int32)]
		if base.FormeBasePokemonID.Valid {
			return nil, formeCycleError(p.ID, base.ID)
		}
	}

	b.frozen = true
	return d, nil
}

// checkOrphans verifies that every foreign key points at a loaded row.
func (b *Builder) checkOrphans() error {
	idSets := make(map[string]map[int64]struct{})
	for table, rows := range b.rows {
		if len(rows) == 0 {
			continue
		}
		cols := schema.Columns(rows[0])
		idIdx := -1
		for _, col := range cols {
			if col.Name == "id" && col.PrimaryKey {
				idIdx = col.FieldIndex
				break
			}
		}
		if idIdx < 0 {
			continue
		}
		set := make(map[int64]struct{}, len(rows))
		for _, row := range rows {
			val, isNull := columnValue(reflect.ValueOf(row).Field(idIdx))
			if isNull {
				continue
			}
			if id, ok := val.(int64); ok {
				set[id] = struct{}{}
			}
		}
		idSets[table] = set
	}

	for table, rows := range b.rows {
		if len(rows) == 0 {
			continue
		}
		cols := schema.Columns(rows[0])
		for _, row := range rows {
			v := reflect.ValueOf(row)
			for _, col := range cols {
				if col.RefTable == "" {
					continue
				}
				val, isNull := columnValue(v.Field(col.FieldIndex))
				if isNull {
					continue
				}
				id, ok := val.(int64)
				if !ok {
					continue
				}
				if _, found := idSets[col.RefTable][id]; !found {
					return orphanError(table, col.Name, id)
				}
			}
		}
	}
	return nil
}

// columnValue extracts a column's value from a struct field, reporting
// SQL NULL separately.
func columnValue(fv reflect.Value) (any, bool) {
	switch val := fv.Interface().(type) {
	case int:
		return int64(val), false
	case int64:
		return val, false
	case string:
		return val, false
	case bool:
		return val, false
	case time.Time:
		return val, false
	case sql.NullInt16:
		return int64(val.Int16), !val.Valid
	case sql.NullInt32:
		return int64(val.Int32), !val.Valid
	case sql.NullInt64:
		return val.Int64, !val.Valid
	case sql.NullString:
		return val.String, !val.Valid
	case sql.NullBool:
		return val.Bool, !val.Valid
	case sql.NullTime:
		return val.Time, !val.Valid
	default:
		return fv.Interface(), false
	}
}

func deref(m schema.Model) schema.Model {
	v := reflect.ValueOf(m)
	if v.Kind() == reflect.Ptr {
		return v.Elem().Interface().(schema.Model)
	}
	return m
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func sortByInt[T any](items []T, key func(T) int) {
	sort.Slice(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
