// Package history persists the conversation transcript in a small
// SQLite meta database, separate from the database the user is
// querying. The translation pipeline never reads or writes this
// store; only the CLI session does.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/dbtalk/internal/domain"
	_ "modernc.org/sqlite"
)

// DBTX is the common interface satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

const schema = `CREATE TABLE IF NOT EXISTS turns (
	id         TEXT PRIMARY KEY,
	role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
	text       TEXT NOT NULL,
	sql_text   TEXT NOT NULL DEFAULT '',
	risk_tier  TEXT NOT NULL DEFAULT '',
	outcome    TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_turns_created_at ON turns(created_at);`

// OpenMeta opens the meta database at path, creating parent
// directories and running the schema migration. ":memory:" opens an
// in-memory database.
func OpenMeta(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating meta db directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening meta database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating meta database: %w", err)
	}
	return db, nil
}

// SQLiteTurnRepo stores turns in SQLite.
type SQLiteTurnRepo struct {
	db DBTX
}

// NewSQLiteTurnRepo creates a SQLiteTurnRepo.
func NewSQLiteTurnRepo(db DBTX) *SQLiteTurnRepo {
	return &SQLiteTurnRepo{db: db}
}

// Append inserts one turn. CreatedAt defaults to now when unset.
func (r *SQLiteTurnRepo) Append(ctx context.Context, t *Turn) error {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	query := `INSERT INTO turns (id, role, text, sql_text, risk_tier, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		string(t.Role),
		t.Text,
		t.SQL,
		string(t.RiskTier),
		t.Outcome,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting turn: %w", err)
	}
	return nil
}

// ListRecent returns up to limit turns, newest first.
func (r *SQLiteTurnRepo) ListRecent(ctx context.Context, limit int) ([]*Turn, error) {
	query := `SELECT id, role, text, sql_text, risk_tier, outcome, created_at
		FROM turns ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent turns: %w", err)
	}
	defer rows.Close()

	var turns []*Turn
	for rows.Next() {
		var t Turn
		var role, tier, createdAtStr string
		if err := rows.Scan(&t.ID, &role, &t.Text, &t.SQL, &tier, &t.Outcome, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		t.Role = domain.Role(role)
		t.RiskTier = domain.RiskTier(tier)
		if ts, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
			t.CreatedAt = ts
		}
		turns = append(turns, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}
