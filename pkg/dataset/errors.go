package dataset

import (
	"errors"
	"fmt"

	"github.com/dexdata/dexdb/pkg/errcode"
	"github.com/gnames/gn"
)

func nullError(table, column string) error {
	return &gn.Error{
		Code: errcode.DatasetNullViolationError,
		Msg:  fmt.Sprintf("Column '%s.%s' does not accept NULL", table, column),
		Err:  fmt.Errorf("null violation: %s.%s", table, column),
	}
}

func lengthError(table, column string, maxLen, got int) error {
	return &gn.Error{
		Code: errcode.DatasetLengthViolationError,
		Msg:  fmt.Sprintf("Value for '%s.%s' is too long", table, column),
		Err: fmt.Errorf(
			"length violation: %s.%s allows %d characters, got %d",
			table, column, maxLen, got,
		),
	}
}

func enumError(table, column, value string) error {
	return &gn.Error{
		Code: errcode.DatasetEnumViolationError,
		Msg:  fmt.Sprintf("Value '%s' is not allowed for '%s.%s'", value, table, column),
		Err:  fmt.Errorf("enum violation: %s.%s = %q", table, column, value),
	}
}

func duplicateKeyError(table, key string) error {
	return &gn.Error{
		Code: errcode.DatasetDuplicateKeyError,
		Msg:  fmt.Sprintf("Duplicate key in table '%s'", table),
		Err:  fmt.Errorf("duplicate key: %s (%s)", table, key),
	}
}

func orphanError(table, column string, value int64) error {
	return &gn.Error{
		Code: errcode.DatasetOrphanError,
		Msg: fmt.Sprintf(
			"Column '%s.%s' references a row that does not exist",
			table, column,
		),
		Err: fmt.Errorf("orphan: %s.%s = %d", table, column, value),
	}
}

func formeCycleError(pokemonID, baseID int) error {
	return &gn.Error{
		Code: errcode.DatasetFormeCycleError,
		Msg:  "A base forme must not itself have a base forme",
		Err: fmt.Errorf(
			"forme cycle: pokemon %d points at base %d which is not a base forme",
			pokemonID, baseID,
		),
	}
}

func frozenError() error {
	return &gn.Error{
		Code: errcode.DatasetFrozenError,
		Msg:  "Dataset is frozen; no rows can be added after Build",
		Err:  errors.New("add after build"),
	}
}

func notFoundError(kind string, key any) error {
	return &gn.Error{
		Code: errcode.DatasetNotFoundError,
		Msg:  fmt.Sprintf("%s '%v' not found", kind, key),
		Err:  fmt.Errorf("not found: %s %v", kind, key),
	}
}

func statNotFoundError(stat any) error {
	return &gn.Error{
		Code: errcode.DatasetStatNotFoundError,
		Msg:  fmt.Sprintf("No stat '%v' for this pokémon", stat),
		Err:  fmt.Errorf("stat not found: %v", stat),
	}
}

// IsNotFound reports whether err is a lookup failure as opposed to an
// integrity violation. Callers are expected to handle these locally.
func IsNotFound(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return gnErr.Code == errcode.DatasetNotFoundError ||
		gnErr.Code == errcode.DatasetStatNotFoundError
}

// IsIntegrityViolation reports whether err describes data that cannot
// be admitted into the dataset.
func IsIntegrityViolation(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	switch gnErr.Code {
	case errcode.DatasetNullViolationError,
		errcode.DatasetLengthViolationError,
		errcode.DatasetEnumViolationError,
		errcode.DatasetDuplicateKeyError,
		errcode.DatasetOrphanError,
		errcode.DatasetFormeCycleError:
		return true
	}
	return false
}
