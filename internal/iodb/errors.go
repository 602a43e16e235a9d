package iodb

import (
	"errors"
	"fmt"

	"github.com/dexdata/dexdb/pkg/errcode"
	"github.com/gnames/gn"
)

func connectionError(host string, port int, database string, err error) error {
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg: fmt.Sprintf(
			`<err>Could not connect to PostgreSQL.</err>
   Check that the server is running and that the settings in
   <em>dexdb.yaml</em> match: host %s, port %d, database %s.`,
			host, port, database,
		),
		Err: fmt.Errorf("connect to %s:%d/%s: %w", host, port, database, err),
	}
}

func notConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  errors.New("operator used before Connect"),
	}
}

func tableCheckError(what string, err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  fmt.Sprintf("Failed to check %s", what),
		Err:  fmt.Errorf("table check %s: %w", what, err),
	}
}

func queryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Failed to list tables of the public schema",
		Err:  fmt.Errorf("query tables: %w", err),
	}
}

func dropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  fmt.Sprintf("Failed to drop table '%s'", table),
		Err:  fmt.Errorf("drop table %s: %w", table, err),
	}
}
