package iopopulate

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
		Err:  errors.New("populator used before Connect"),
	}
}

func snapshotNotFoundError(path string) error {
	return &gn.Error{
		Code: errcode.PopulateSnapshotNotFoundError,
		Msg: fmt.Sprintf(
			`<err>Snapshot file '%s' does not exist.</err>
   Point <em>populate.snapshot_path</em> at a Pokédex SQLite snapshot.`,
			path,
		),
		Err: fmt.Errorf("snapshot not found: %s", path),
	}
}

func snapshotOpenError(path string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateSnapshotOpenError,
		Msg:  fmt.Sprintf("Failed to open snapshot '%s'", path),
		Err:  fmt.Errorf("open snapshot %s: %w", path, err),
	}
}

func snapshotReadError(table string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateSnapshotReadError,
		Msg:  fmt.Sprintf("Failed to read table '%s' from the snapshot", table),
		Err:  fmt.Errorf("read snapshot table %s: %w", table, err),
	}
}

func copyError(table string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateCopyError,
		Msg:  fmt.Sprintf("Failed to copy table '%s' into PostgreSQL", table),
		Err:  fmt.Errorf("copy %s: %w", table, err),
	}
}

func orphanError(table, column string, count int64) error {
	return &gn.Error{
		Code: errcode.PopulateOrphanError,
		Msg: fmt.Sprintf(
			"Table '%s' has %d rows whose '%s' references a missing row",
			table, count, column,
		),
		Err: fmt.Errorf("orphans: %s.%s (%d rows)", table, column, count),
	}
}

func loadRecordError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateLoadRecordError,
		Msg:  "Failed to record the import run in dex_loads",
		Err:  fmt.Errorf("dex_loads: %w", err),
	}
}

func cancelledError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateCancelledError,
		Msg:  "Population was cancelled",
		Err:  fmt.Errorf("cancelled: %w", err),
	}
}
