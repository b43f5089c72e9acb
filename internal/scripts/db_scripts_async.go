// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package scripts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoDB is returned when a DbScriptsAsync has no database handle.
var ErrNoDB = errors.New("database not configured")

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// DbScriptsAsync runs SQL through a database/sql handle using the
// invocation context for cancellation.
type DbScriptsAsync struct {
	ScriptMethods
	DB Queryer
}

func (d *DbScriptsAsync) db() (Queryer, error) {
	if d.DB == nil {
		return nil, ErrNoDB
	}
	return d.DB, nil
}

// DbSelect returns every row of the result as a column name to value map.
func (d *DbScriptsAsync) DbSelect(scope *ScriptScopeContext, query string, args ...any) ([]map[string]any, error) {
	db, err := d.db()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(scope.Ctx(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("db select: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// DbSingle returns the first row of the result, or nil if there is none.
func (d *DbScriptsAsync) DbSingle(scope *ScriptScopeContext, query string, args ...any) (map[string]any, error) {
	all, err := d.DbSelect(scope, query, args...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// DbScalar returns the first column of the first row.
func (d *DbScriptsAsync) DbScalar(scope *ScriptScopeContext, query string, args ...any) (any, error) {
	db, err := d.db()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(scope.Ctx(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("db scalar: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var v any
	if err := rows.Scan(&v); err != nil {
		return nil, fmt.Errorf("db scalar: %w", err)
	}
	return v, nil
}

// DbExec runs a statement and returns the number of affected rows.
func (d *DbScriptsAsync) DbExec(scope *ScriptScopeContext, query string, args ...any) (int64, error) {
	db, err := d.db()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(scope.Ctx(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("db exec: %w", err)
	}
	return res.RowsAffected()
}

func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			row[c] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
