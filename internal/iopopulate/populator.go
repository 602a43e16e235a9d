// Package iopopulate implements the Populator interface for importing a
// Pokédex SQLite snapshot into PostgreSQL. This is an impure I/O
// package that reads the snapshot and performs bulk inserts.
package iopopulate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"github.com/dexdata/dexdb/pkg/config"
	"github.com/dexdata/dexdb/pkg/db"
	"github.com/dexdata/dexdb/pkg/lifecycle"
	"github.com/dexdata/dexdb/pkg/schema"
)

// populator implements the Populator and Verifier interfaces.
type populator struct {
	operator db.Operator
}

// NewPopulator creates a new Populator.
func NewPopulator(op db.Operator) lifecycle.Populator {
	return &populator{operator: op}
}

// NewVerifier creates a Verifier that runs the same orphan checks as
// Populate, against an already-loaded database.
func NewVerifier(op db.Operator) lifecycle.Verifier {
	return &populator{operator: op}
}

// Populate imports all tables from the snapshot, verifies referential
// integrity, and records the run in dex_loads.
func (p *populator) Populate(
	ctx context.Context,
	cfg *config.Config,
) error {
	if p.operator.Pool() == nil {
		return notConnectedError()
	}

	startTime := time.Now()
	path := cfg.Populate.SnapshotPath
	slog.Info("Starting database population", "snapshot", path)

	snap, err := openSnapshot(path)
	if err != nil {
		return err
	}
	defer snap.Close()

	present, err := snapshotTables(ctx, snap)
	if err != nil {
		return err
	}

	loadID := uuid.New().String()
	if err := p.startLoad(ctx, loadID, path, startTime); err != nil {
		return err
	}

	gn.Info("(1/3) Copying tables...")
	total, err := p.copyTables(ctx, cfg, snap, present, loadID)
	if err != nil {
		return err
	}

	gn.Info("(2/3) Verifying references...")
	if err := p.verifyIntegrity(ctx, cfg.JobsNumber); err != nil {
		p.failLoad(ctx, loadID, err)
		return err
	}

	gn.Info("(3/3) Recording the import...")
	if err := p.finishLoad(ctx, loadID, total); err != nil {
		return err
	}

	totalDuration := time.Since(startTime)
	slog.Info("Population complete",
		"records", total,
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(fmt.Sprintf(
		"Imported %s records in <em>%s</em>.",
		humanize.Comma(total),
		gnfmt.TimeString(totalDuration.Seconds()),
	))
	return nil
}

// Verify rebuilds the in-memory dataset from the snapshot, which runs
// every write-time and build-time check, then repeats the orphan checks
// against the loaded database. A missing snapshot skips the first
// phase.
func (p *populator) Verify(
	ctx context.Context,
	cfg *config.Config,
) error {
	startTime := time.Now()

	path := cfg.Populate.SnapshotPath
	if _, err := os.Stat(path); err == nil {
		gn.Info("(1/2) Checking the snapshot...")
		ds, err := BuildDataset(ctx, path)
		if err != nil {
			return err
		}
		slog.Info("Snapshot checks passed",
			"pokemon", len(ds.Rows("pokemon")))
	} else {
		slog.Warn("Snapshot not found, checking the database only",
			"snapshot", path)
		gn.Info("(1/2) No snapshot file, skipping snapshot checks...")
	}

	gn.Info("(2/2) Checking database references...")
	if err := p.verifyIntegrity(ctx, cfg.JobsNumber); err != nil {
		return err
	}

	gn.Info(fmt.Sprintf(
		"All references resolve. Checked in <em>%s</em>.",
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	))
	return nil
}

func (p *populator) copyTables(
	ctx context.Context,
	cfg *config.Config,
	snap *sql.DB,
	present map[string]bool,
	loadID string,
) (int64, error) {
	var total int64
	for _, m := range copyModels(cfg.Populate.Tables) {
		select {
		case <-ctx.Done():
			err := cancelledError(ctx.Err())
			p.failLoad(ctx, loadID, err)
			return total, err
		default:
		}

		table := m.TableName()
		if !present[table] {
			slog.Warn("Table missing from snapshot, skipping",
				"table", table)
			continue
		}

		count, err := p.copyTable(ctx, snap, m, cfg.Database.BatchSize)
		if err != nil {
			p.failLoad(ctx, loadID, err)
			return total, err
		}
		total += count
		slog.Info("Copied table", "table", table, "records", count)
	}
	return total, nil
}

// copyModels lists the models to import, in dependency order. The
// dex_loads bookkeeping table never comes from a snapshot. A non-empty
// filter limits the import to the named tables.
func copyModels(filter []string) []schema.Model {
	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}

	var res []schema.Model
	for _, m := range schema.AllModels() {
		model := m.(schema.Model)
		if model.TableName() == "dex_loads" {
			continue
		}
		if len(wanted) > 0 && !wanted[model.TableName()] {
			continue
		}
		res = append(res, model)
	}
	return res
}

// startLoad inserts the dex_loads row marking the run as in progress.
func (p *populator) startLoad(
	ctx context.Context, id, path string, startedAt time.Time,
) error {
	_, err := p.operator.Pool().Exec(ctx,
		`INSERT INTO dex_loads (id, snapshot_path, started_at)
  VALUES ($1, $2, $3)`,
		id, path, startedAt,
	)
	if err != nil {
		return loadRecordError(err)
	}
	return nil
}

// finishLoad completes the dex_loads row with the record count.
func (p *populator) finishLoad(
	ctx context.Context, id string, records int64,
) error {
	_, err := p.operator.Pool().Exec(ctx,
		`UPDATE dex_loads
  SET finished_at = $2, records_num = $3
  WHERE id = $1`,
		id, time.Now(), records,
	)
	if err != nil {
		return loadRecordError(err)
	}
	return nil
}

// failLoad records the failure on the dex_loads row. The original error
// is what the caller reports; a bookkeeping failure here is only
// logged.
func (p *populator) failLoad(ctx context.Context, id string, cause error) {
	_, err := p.operator.Pool().Exec(ctx,
		`UPDATE dex_loads
  SET finished_at = $2, error = $3
  WHERE id = $1`,
		id, time.Now(), cause.Error(),
	)
	if err != nil {
		slog.Error("Failed to record import failure",
			"load_id", id, "error", err)
	}
}
