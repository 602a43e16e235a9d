package iopopulate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dexdata/dexdb/pkg/schema"
)

// foreignKey is one reference edge of the schema, taken from the column
// registry.
type foreignKey struct {
	table, column, refTable, refColumn string
}

// foreignKeys lists every reference of the schema in a stable order.
func foreignKeys() []foreignKey {
	var fks []foreignKey
	for table, cols := range schema.AllColumns() {
		for _, col := range cols {
			if col.RefTable == "" {
				continue
			}
			fks = append(fks, foreignKey{
				table:     table,
				column:    col.Name,
				refTable:  col.RefTable,
				refColumn: col.RefColumn,
			})
		}
	}
	sort.Slice(fks, func(i, j int) bool {
		if fks[i].table != fks[j].table {
			return fks[i].table < fks[j].table
		}
		return fks[i].column < fks[j].column
	})
	return fks
}

// verifyIntegrity checks every foreign key of the loaded database for
// orphaned rows. Checks run concurrently, bounded by jobs.
func (p *populator) verifyIntegrity(ctx context.Context, jobs int) error {
	pool := p.operator.Pool()
	if pool == nil {
		return notConnectedError()
	}

	fks := foreignKeys()
	slog.Info("Verifying references", "checks", len(fks), "jobs", jobs)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, fk := range fks {
		g.Go(func() error {
			col := schema.QuoteColumn(fk.column)
			refCol := schema.QuoteColumn(fk.refColumn)
			query := fmt.Sprintf(
				`SELECT count(*) FROM %s t
  LEFT JOIN %s r ON t.%s = r.%s
  WHERE t.%s IS NOT NULL AND r.%s IS NULL`,
				fk.table, fk.refTable, col, refCol,
				col, refCol,
			)

			var count int64
			if err := pool.QueryRow(ctx, query).Scan(&count); err != nil {
				return copyError(fk.table, err)
			}
			if count > 0 {
				return orphanError(fk.table, fk.column, count)
			}
			return nil
		})
	}

	return g.Wait()
}
