package iopopulate

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5"

	"github.com/dexdata/dexdb/pkg/schema"
)

// copyTable moves one table from the snapshot into PostgreSQL with the
// COPY protocol. The table is truncated first so a rerun replaces data
// instead of duplicating it.
func (p *populator) copyTable(
	ctx context.Context,
	snap *sql.DB,
	m schema.Model,
	batchSize int,
) (int64, error) {
	table := m.TableName()
	cols := schema.Columns(m)

	models, err := scanTable(ctx, snap, m)
	if err != nil {
		return 0, err
	}

	pool := p.operator.Pool()
	_, err = pool.Exec(ctx,
		fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
	if err != nil {
		return 0, copyError(table, err)
	}

	if len(models) == 0 {
		return 0, nil
	}

	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}

	bar := pb.Full.Start(len(models))
	bar.Set("prefix", fmt.Sprintf("Copying %s: ", table))
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var copied int64
	records := make([][]any, 0, batchSize)

	flush := func() error {
		if len(records) == 0 {
			return nil
		}
		n, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			names,
			pgx.CopyFromRows(records),
		)
		if err != nil {
			return copyError(table, err)
		}
		copied += n
		records = records[:0]
		return nil
	}

	for _, row := range models {
		records = append(records, rowValues(row, cols))
		bar.Increment()
		if len(records) >= batchSize {
			if err := flush(); err != nil {
				return copied, err
			}
		}
	}
	if err := flush(); err != nil {
		return copied, err
	}

	return copied, nil
}

// rowValues converts a model into a COPY record, turning invalid
// sql.Null* fields into SQL NULL.
func rowValues(m schema.Model, cols []schema.ColumnInfo) []any {
	v := reflect.ValueOf(m)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	vals := make([]any, len(cols))
	for i, col := range cols {
		vals[i] = fieldValue(v.Field(col.FieldIndex))
	}
	return vals
}

func fieldValue(fv reflect.Value) any {
	switch val := fv.Interface().(type) {
	case sql.NullInt16:
		if !val.Valid {
			return nil
		}
		return val.Int16
	case sql.NullInt32:
		if !val.Valid {
			return nil
		}
		return val.Int32
	case sql.NullInt64:
		if !val.Valid {
			return nil
		}
		return val.Int64
	case sql.NullString:
		if !val.Valid {
			return nil
		}
		return val.String
	case sql.NullBool:
		if !val.Valid {
			return nil
		}
		return val.Bool
	case sql.NullTime:
		if !val.Valid {
			return nil
		}
		return val.Time
	default:
		return fv.Interface()
	}
}
