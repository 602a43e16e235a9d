package ioschema

import (
	"errors"
	"fmt"

	"github.com/dexdata/dexdb/pkg/errcode"
	"github.com/gnames/gn"
)

func notConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  errors.New("schema manager used before Connect"),
	}
}

func gormConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Failed to open a GORM session over the connection pool",
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

func createSchemaError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  "Failed to create database schema",
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}

func migrateSchemaError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  "Failed to migrate database schema",
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}

func collationError(table, column string, err error) error {
	return &gn.Error{
		Code: errcode.SchemaCollationError,
		Msg:  fmt.Sprintf("Failed to set collation on %s.%s", table, column),
		Err:  fmt.Errorf("collation %s.%s: %w", table, column, err),
	}
}
