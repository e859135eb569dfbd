package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"quotemaster/internal/citytax"
)

// SQLiteStore is the default single-file TaxStore.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent access.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tax_rules (
		key        TEXT PRIMARY KEY,
		rule_json  TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) All(ctx context.Context) (map[string]citytax.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, rule_json FROM tax_rules`)
	if err != nil {
		return nil, fmt.Errorf("query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	rules := make(map[string]citytax.Rule)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var r citytax.Rule
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("decode rule %s: %w", key, err)
		}
		rules[key] = r
	}
	return rules, rows.Err()
}

func (s *SQLiteStore) Put(ctx context.Context, key string, rule citytax.Rule) error {
	raw, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("marshal rule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tax_rules (key, rule_json, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET rule_json = excluded.rule_json, updated_at = datetime('now')
	`, key, string(raw))
	if err != nil {
		return fmt.Errorf("upsert rule: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tax_rules WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}
