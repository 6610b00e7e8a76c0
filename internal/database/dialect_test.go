package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

// =============================================================================
// Dialect Tests
// =============================================================================

func TestNewDialect_SQLite(t *testing.T) {
	dialect := NewDialect(DialectSQLite)
	if _, ok := dialect.(*SQLiteDialect); !ok {
		t.Errorf("Expected *SQLiteDialect, got %T", dialect)
	}
}

func TestNewDialect_Postgres(t *testing.T) {
	dialect := NewDialect(DialectPostgres)
	if _, ok := dialect.(*PostgresDialect); !ok {
		t.Errorf("Expected *PostgresDialect, got %T", dialect)
	}
}

func TestNewDialect_Default(t *testing.T) {
	// Unknown dialect should default to SQLite
	dialect := NewDialect("unknown")
	if _, ok := dialect.(*SQLiteDialect); !ok {
		t.Errorf("Expected default *SQLiteDialect, got %T", dialect)
	}
}

// =============================================================================
// SQLite Dialect Tests
// =============================================================================

func TestSQLiteDialect_DriverName(t *testing.T) {
	d := &SQLiteDialect{}
	if got := d.DriverName(); got != "sqlite" {
		t.Errorf("DriverName() = %q, want %q", got, "sqlite")
	}
}

func TestSQLiteDialect_DSN(t *testing.T) {
	d := &SQLiteDialect{}
	cfg := DefaultConfig("/data/repquest.db")
	if got := d.DSN(cfg); got != "/data/repquest.db" {
		t.Errorf("DSN() = %q, want %q", got, "/data/repquest.db")
	}
}

func TestSQLiteDialect_Placeholder(t *testing.T) {
	d := &SQLiteDialect{}
	tests := []struct {
		position int
		want     string
	}{
		{1, "?"},
		{2, "?"},
		{10, "?"},
		{100, "?"},
	}
	for _, tt := range tests {
		if got := d.Placeholder(tt.position); got != tt.want {
			t.Errorf("Placeholder(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestSQLiteDialect_SupportsLastInsertID(t *testing.T) {
	d := &SQLiteDialect{}
	if got := d.SupportsLastInsertID(); !got {
		t.Error("SupportsLastInsertID() = false, want true")
	}
}

func TestSQLiteDialect_ReturningClause(t *testing.T) {
	d := &SQLiteDialect{}
	if got := d.ReturningClause("id"); got != "" {
		t.Errorf("ReturningClause() = %q, want empty string", got)
	}
}

func TestSQLiteDialect_InitStatements(t *testing.T) {
	d := &SQLiteDialect{}
	stmts := d.InitStatements()

	expected := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}

	if len(stmts) != len(expected) {
		t.Fatalf("InitStatements() returned %d statements, want %d", len(stmts), len(expected))
	}

	for i, want := range expected {
		if stmts[i] != want {
			t.Errorf("InitStatements()[%d] = %q, want %q", i, stmts[i], want)
		}
	}
}

func TestSQLiteDialect_IsDuplicateKeyError(t *testing.T) {
	d := &SQLiteDialect{}
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("some random error"), false},
		{errors.New("UNIQUE constraint failed: profiles.name"), true},
		{errors.New("UNIQUE constraint failed: saves.profile_id, saves.slot"), true},
		{errors.New("foreign key constraint failed"), false},
	}
	for _, tt := range tests {
		if got := d.IsDuplicateKeyError(tt.err); got != tt.want {
			errStr := "nil"
			if tt.err != nil {
				errStr = tt.err.Error()
			}
			t.Errorf("IsDuplicateKeyError(%q) = %v, want %v", errStr, got, tt.want)
		}
	}
}

func TestSQLiteDialect_CaseInsensitiveText(t *testing.T) {
	d := &SQLiteDialect{}
	if got := d.CaseInsensitiveText(); got != "TEXT COLLATE NOCASE" {
		t.Errorf("CaseInsensitiveText() = %q, want %q", got, "TEXT COLLATE NOCASE")
	}
}

// =============================================================================
// PostgreSQL Dialect Tests
// =============================================================================

func TestPostgresDialect_DriverName(t *testing.T) {
	d := &PostgresDialect{}
	if got := d.DriverName(); got != "postgres" {
		t.Errorf("DriverName() = %q, want %q", got, "postgres")
	}
}

func TestPostgresDialect_DSN(t *testing.T) {
	d := &PostgresDialect{}
	cfg := Config{
		Driver: "postgres",
		Postgres: PostgresConfig{
			Host:     "db.example.com",
			Port:     5433,
			User:     "repquest",
			Password: "secret",
			Database: "repquest",
			SSLMode:  "require",
		},
	}

	want := "host=db.example.com port=5433 user=repquest password=secret dbname=repquest sslmode=require"
	if got := d.DSN(cfg); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestPostgresDialect_Placeholder(t *testing.T) {
	d := &PostgresDialect{}
	tests := []struct {
		position int
		want     string
	}{
		{1, "$1"},
		{2, "$2"},
		{10, "$10"},
		{100, "$100"},
	}
	for _, tt := range tests {
		if got := d.Placeholder(tt.position); got != tt.want {
			t.Errorf("Placeholder(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestPostgresDialect_SupportsLastInsertID(t *testing.T) {
	d := &PostgresDialect{}
	if got := d.SupportsLastInsertID(); got {
		t.Error("SupportsLastInsertID() = true, want false")
	}
}

func TestPostgresDialect_ReturningClause(t *testing.T) {
	d := &PostgresDialect{}
	tests := []struct {
		column string
		want   string
	}{
		{"id", " RETURNING id"},
		{"profile_id", " RETURNING profile_id"},
	}
	for _, tt := range tests {
		if got := d.ReturningClause(tt.column); got != tt.want {
			t.Errorf("ReturningClause(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}
}

func TestPostgresDialect_InitStatements(t *testing.T) {
	d := &PostgresDialect{}
	stmts := d.InitStatements()

	if len(stmts) != 1 {
		t.Fatalf("InitStatements() returned %d statements, want 1", len(stmts))
	}

	expected := "CREATE EXTENSION IF NOT EXISTS citext"
	if stmts[0] != expected {
		t.Errorf("InitStatements()[0] = %q, want %q", stmts[0], expected)
	}
}

func TestPostgresDialect_IsDuplicateKeyError(t *testing.T) {
	d := &PostgresDialect{}
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("some random error"), false},
		{&pq.Error{Code: "23505"}, true},
		{&pq.Error{Code: "23503"}, false},
		{fmt.Errorf("failed to create profile: %w", &pq.Error{Code: "23505"}), true},
		{errors.New("duplicate key value violates unique constraint"), true},
		{errors.New("ERROR: duplicate key value (SQLSTATE 23505)"), true},
		{errors.New("foreign key constraint"), false},
	}
	for _, tt := range tests {
		if got := d.IsDuplicateKeyError(tt.err); got != tt.want {
			errStr := "nil"
			if tt.err != nil {
				errStr = tt.err.Error()
			}
			t.Errorf("IsDuplicateKeyError(%q) = %v, want %v", errStr, got, tt.want)
		}
	}
}

func TestPostgresDialect_CaseInsensitiveText(t *testing.T) {
	d := &PostgresDialect{}
	if got := d.CaseInsensitiveText(); got != "CITEXT" {
		t.Errorf("CaseInsensitiveText() = %q, want %q", got, "CITEXT")
	}
}

// =============================================================================
// QueryBuilder Tests
// =============================================================================

func TestNewQueryBuilder(t *testing.T) {
	dialect := &SQLiteDialect{}
	qb := NewQueryBuilder(dialect)
	if qb == nil {
		t.Fatal("NewQueryBuilder() returned nil")
	}
	if qb.dialect != dialect {
		t.Error("QueryBuilder dialect not set correctly")
	}
}

func TestQueryBuilder_Build_SQLite(t *testing.T) {
	qb := NewQueryBuilder(&SQLiteDialect{})
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT * FROM profiles", "SELECT * FROM profiles"},
		{"SELECT * FROM profiles WHERE id = ?", "SELECT * FROM profiles WHERE id = ?"},
		{"SELECT * FROM saves WHERE profile_id = ? AND slot = ?", "SELECT * FROM saves WHERE profile_id = ? AND slot = ?"},
		{"INSERT INTO profiles (name, pin_hash) VALUES (?, ?)", "INSERT INTO profiles (name, pin_hash) VALUES (?, ?)"},
		{"UPDATE profiles SET pin_hash = ? WHERE id = ?", "UPDATE profiles SET pin_hash = ? WHERE id = ?"},
	}
	for _, tt := range tests {
		if got := qb.Build(tt.input); got != tt.want {
			t.Errorf("Build(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestQueryBuilder_Build_Postgres(t *testing.T) {
	qb := NewQueryBuilder(&PostgresDialect{})
	tests := []struct {
		input string
		want  string
	}{
		{"SELECT * FROM profiles", "SELECT * FROM profiles"},
		{"SELECT * FROM profiles WHERE id = ?", "SELECT * FROM profiles WHERE id = $1"},
		{"SELECT * FROM saves WHERE profile_id = ? AND slot = ?", "SELECT * FROM saves WHERE profile_id = $1 AND slot = $2"},
		{"INSERT INTO profiles (name, pin_hash) VALUES (?, ?)", "INSERT INTO profiles (name, pin_hash) VALUES ($1, $2)"},
		{"UPDATE profiles SET pin_hash = ? WHERE id = ?", "UPDATE profiles SET pin_hash = $1 WHERE id = $2"},
		{
			"SELECT * FROM saves WHERE a = ? AND b = ? AND c = ? AND d = ? AND e = ?",
			"SELECT * FROM saves WHERE a = $1 AND b = $2 AND c = $3 AND d = $4 AND e = $5",
		},
	}
	for _, tt := range tests {
		if got := qb.Build(tt.input); got != tt.want {
			t.Errorf("Build(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestQueryBuilder_BuildWithReturning_SQLite(t *testing.T) {
	qb := NewQueryBuilder(&SQLiteDialect{})
	query := "INSERT INTO profiles (name) VALUES (?)"
	if got := qb.BuildWithReturning(query, "id"); got != query {
		t.Errorf("BuildWithReturning(%q, %q) = %q, want unchanged query", query, "id", got)
	}
}

func TestQueryBuilder_BuildWithReturning_Postgres(t *testing.T) {
	qb := NewQueryBuilder(&PostgresDialect{})
	tests := []struct {
		query  string
		column string
		want   string
	}{
		{"INSERT INTO profiles (name) VALUES (?)", "id", "INSERT INTO profiles (name) VALUES ($1) RETURNING id"},
		{"INSERT INTO saves (profile_id, slot) VALUES (?, ?)", "id", "INSERT INTO saves (profile_id, slot) VALUES ($1, $2) RETURNING id"},
	}
	for _, tt := range tests {
		if got := qb.BuildWithReturning(tt.query, tt.column); got != tt.want {
			t.Errorf("BuildWithReturning(%q, %q) = %q, want %q", tt.query, tt.column, got, tt.want)
		}
	}
}

func TestQueryBuilder_Build_EmptyQuery(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
	}{
		{"SQLite", &SQLiteDialect{}},
		{"Postgres", &PostgresDialect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := NewQueryBuilder(tt.dialect)
			if got := qb.Build(""); got != "" {
				t.Errorf("Build(\"\") = %q, want empty string", got)
			}
		})
	}
}

func TestQueryBuilder_Build_ManyPlaceholders(t *testing.T) {
	qb := NewQueryBuilder(&PostgresDialect{})
	// 15 placeholders - tests double-digit position numbers
	input := "INSERT INTO t VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	want := "INSERT INTO t VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)"
	if got := qb.Build(input); got != want {
		t.Errorf("Build with 15 placeholders failed:\ngot:  %q\nwant: %q", got, want)
	}
}

// =============================================================================
// Config Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	path := "/path/to/test.db"
	cfg := DefaultConfig(path)

	if cfg.Driver != "sqlite" {
		t.Errorf("Driver = %q, want %q", cfg.Driver, "sqlite")
	}
	if cfg.SQLitePath != path {
		t.Errorf("SQLitePath = %q, want %q", cfg.SQLitePath, path)
	}
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want %q", cfg.Host, "localhost")
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want %d", cfg.Port, 5432)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want %q", cfg.SSLMode, "disable")
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want %d", cfg.MaxOpenConns, 25)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns = %d, want %d", cfg.MaxIdleConns, 5)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want %v", cfg.ConnMaxLifetime, 5*time.Minute)
	}
}

// Verify that both dialects implement the Dialect interface
func TestDialect_InterfaceCompliance(t *testing.T) {
	var _ Dialect = (*SQLiteDialect)(nil)
	var _ Dialect = (*PostgresDialect)(nil)
}
