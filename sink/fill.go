package sink

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/tutils/trand"
	"github.com/tutils/trand/generator"
)

// CreateTable creates table with cols unless it already exists.
func CreateTable(ctx context.Context, db *sqlx.DB, table string, cols []Column) error {
	if !identRe.MatchString(table) {
		return trand.NewDomainError("table", "invalid table name %q", table)
	}
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = quoteIdent(c.Name) + " " + c.SQLType(db.DriverName())
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// Fill creates table if needed and inserts rows generated rows in one
// transaction. Column i draws from seed+i; every column picks among count
// distinct values (rows by default). It returns the number of rows inserted.
func Fill(ctx context.Context, db *sqlx.DB, table string, cols []Column, rows int, seed uint32, opts ...Option) (int, error) {
	opt := newOptions(opts...)
	if rows < 1 {
		return 0, trand.NewDomainError("rows", "number of rows must be at least 1 (%d)", rows)
	}
	count := opt.count
	if count == 0 {
		count = uint32(min(uint64(rows), math.MaxUint32))
	}

	reqs := make([]generator.Request, len(cols))
	for i, c := range cols {
		req, err := c.Request(seed+uint32(i), count)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", c.Name, err)
		}
		reqs[i] = req
	}

	if err := CreateTable(ctx, db, table, cols); err != nil {
		return 0, err
	}

	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quoteIdent(c.Name)
		marks[i] = "?"
	}
	query := db.Rebind(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(names, ", "), strings.Join(marks, ", ")))

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	for n := 0; n < rows; n++ {
		for i, req := range reqs {
			v, err := opt.gen.Generate(req)
			if err != nil {
				return 0, fmt.Errorf("column %s: %w", cols[i].Name, err)
			}
			args[i] = sqlValue(v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", n, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	opt.logger.WithField("table", table).WithField("rows", rows).Info("table filled")
	return rows, nil
}

// sqlValue converts v to a driver argument. Address and identifier types
// travel as their text form so PostgreSQL casts them on insert.
func sqlValue(v generator.Value) interface{} {
	switch x := v.V.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float32:
		return float64(x)
	case float64:
		return x
	case []byte:
		return x
	default:
		return v.Text()
	}
}
