// Package store is the data-store collaborator: it executes built SQL
// statements against the user's SQLite database and reports the
// outcome shape. Execution failures pass through unchanged; the store
// performs no retry or recovery.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/dbtalk/internal/domain"
	_ "modernc.org/sqlite"
)

// Store wraps the target database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path, creating parent directories
// as needed. ":memory:" opens an in-memory database. Enables WAL mode
// and foreign key enforcement.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Execute runs one statement as a single blocking call and returns the
// outcome shaped by the statement's leading keyword: SELECT yields a
// Tabular result, row mutations yield a RowCount, schema changes yield
// PlainSuccess.
func (s *Store) Execute(ctx context.Context, sqlText string) (Outcome, error) {
	switch domain.LeadingKeyword(sqlText) {
	case domain.ActionSelect:
		return s.query(ctx, sqlText)
	case domain.ActionInsert, domain.ActionUpdate, domain.ActionDelete:
		res, err := s.db.ExecContext(ctx, sqlText)
		if err != nil {
			return nil, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		return RowCount{N: n}, nil
	default:
		if _, err := s.db.ExecContext(ctx, sqlText); err != nil {
			return nil, err
		}
		return PlainSuccess{}, nil
	}
}

// query runs a SELECT and renders every cell as a display string.
func (s *Store) query(ctx context.Context, sqlText string) (Outcome, error) {
	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := Tabular{Columns: cols}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, c := range cells {
			row[i] = cellString(c)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(c)
	default:
		return fmt.Sprint(c)
	}
}
