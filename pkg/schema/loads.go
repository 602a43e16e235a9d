package schema

import (
	"database/sql"
	"time"
)

// DexLoad records one import run, so a database can say where its data
// came from and when.
type DexLoad struct {
	ID           string         `db:"id" ddl:"UUID PRIMARY KEY"`
	SnapshotPath string         `db:"snapshot_path" ddl:"VARCHAR(512) NOT NULL"`
	StartedAt    time.Time      `db:"started_at" ddl:"TIMESTAMPTZ NOT NULL"`
	FinishedAt   sql.NullTime   `db:"finished_at" ddl:"TIMESTAMPTZ"`
	RecordsNum   sql.NullInt64  `db:"records_num" ddl:"BIGINT"`
	Error        sql.NullString `db:"error" ddl:"VARCHAR(2048)"`
}

func (DexLoad) TableName() string { return "dex_loads" }
