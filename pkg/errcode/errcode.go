package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Config errors
	ConfigReadError
	ConfigWriteError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Populate errors
	PopulateSnapshotNotFoundError
	PopulateSnapshotOpenError
	PopulateSnapshotReadError
	PopulateCopyError
	PopulateLoadRecordError
	PopulateOrphanError
	PopulateCancelledError

	// Dataset errors
	DatasetNullViolationError
	DatasetLengthViolationError
	DatasetEnumViolationError
	DatasetDuplicateKeyError
	DatasetOrphanError
	DatasetFormeCycleError
	DatasetFrozenError
	DatasetNotFoundError
	DatasetStatNotFoundError
)
