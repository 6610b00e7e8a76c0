// Package database provides SQLite and PostgreSQL persistence for player
// profiles and their save slots.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store wraps the SQL connection and provides persistence operations.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open connects to the database selected by the config and runs migrations.
// The default is a SQLite file; set Driver to "postgres" for PostgreSQL.
func Open(cfg Config) (*Store, error) {
	dialect := NewDialect(DialectType(cfg.Driver))

	if _, ok := dialect.(*SQLiteDialect); ok {
		// Ensure the directory for the database file exists
		dir := filepath.Dir(cfg.SQLitePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dialect.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, ok := dialect.(*PostgresDialect); ok {
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	}

	// PRAGMAs for SQLite, extension creation for PostgreSQL
	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	s := &Store{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if _, ok := s.dialect.(*PostgresDialect); ok {
		pk = "SERIAL PRIMARY KEY"
	}
	nameType := s.dialect.CaseInsensitiveText()

	migrations := []string{
		// Profiles table
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS profiles (
			id %s,
			name %s UNIQUE NOT NULL,
			pin_hash TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_played TIMESTAMP
		)`, pk, nameType),

		// Saves table, one row per profile and slot
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS saves (
			id %s,
			profile_id INTEGER NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			slot INTEGER NOT NULL DEFAULT 1,
			version TEXT NOT NULL DEFAULT '1.0',
			saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			player TEXT NOT NULL DEFAULT '{}',
			quests TEXT NOT NULL DEFAULT '{}',
			inventory TEXT NOT NULL DEFAULT '{}',
			settings TEXT NOT NULL DEFAULT '{}',
			UNIQUE(profile_id, slot)
		)`, pk),

		// Index for common queries
		`CREATE INDEX IF NOT EXISTS idx_saves_profile_id ON saves(profile_id)`,
	}

	// Columns added after the initial schema
	safeMigrations := []string{
		`ALTER TABLE profiles ADD COLUMN pin_hash TEXT`,
		`ALTER TABLE saves ADD COLUMN settings TEXT NOT NULL DEFAULT '{}'`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	// Run safe migrations (ignore "duplicate column" errors for existing databases)
	for _, m := range safeMigrations {
		_, _ = s.db.Exec(m) // Ignore errors - column may already exist
	}

	return nil
}

// insertID runs an INSERT and returns the new row's id on both dialects.
// SQLite uses LastInsertId(), PostgreSQL a RETURNING clause.
func (s *Store) insertID(query string, args ...any) (int64, error) {
	built := s.qb.BuildWithReturning(query, "id")

	if s.dialect.SupportsLastInsertID() {
		result, err := s.db.Exec(built, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	if err := s.db.QueryRow(built, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// DB returns the underlying sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}
