package cache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database that mirrors server data between runs.
// The server stays authoritative; everything here is advisory.
type DB struct {
	db *sql.DB
}

// Open creates or opens the cache database and runs migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Query executes a query and returns rows.
func (d *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return d.db.Query(query, args...)
}

// Exec executes a statement.
func (d *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return d.db.Exec(query, args...)
}

// QueryRow executes a query that returns at most one row.
func (d *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return d.db.QueryRow(query, args...)
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			subject TEXT,
			content TEXT,
			company_name TEXT,
			company_location TEXT,
			company_website TEXT,
			contact_phone TEXT,
			category TEXT,
			tags TEXT,
			status TEXT NOT NULL,
			submitted_at INTEGER,
			fetched_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_templates_status ON templates(status)`,

		`CREATE TABLE IF NOT EXISTS lists (
			name TEXT PRIMARY KEY,
			ids TEXT NOT NULL,
			fetched_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS support_messages (
			id TEXT PRIMARY KEY,
			name TEXT,
			email TEXT,
			company TEXT,
			subject TEXT,
			message TEXT,
			priority TEXT,
			category TEXT,
			status TEXT,
			submitted_at INTEGER,
			fetched_at INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			template_id TEXT NOT NULL,
			title TEXT,
			old_status TEXT,
			new_status TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			read INTEGER DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read)`,

		`CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
