package database

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"
)

// getPostgresTestConfig returns PostgreSQL config if available, nil otherwise.
// Set these environment variables to run PostgreSQL tests:
//
//	REPQUEST_TEST_POSTGRES_HOST (default: localhost)
//	REPQUEST_TEST_POSTGRES_PORT (default: 5432)
//	REPQUEST_TEST_POSTGRES_USER (default: repquest)
//	REPQUEST_TEST_POSTGRES_PASSWORD (default: repquest)
//	REPQUEST_TEST_POSTGRES_DATABASE (default: repquest_test)
func getPostgresTestConfig() *Config {
	// Check if PostgreSQL testing is explicitly enabled
	if os.Getenv("REPQUEST_TEST_POSTGRES") == "" {
		return nil
	}

	host := os.Getenv("REPQUEST_TEST_POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}

	port := 5432
	if portStr := os.Getenv("REPQUEST_TEST_POSTGRES_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &port)
	}

	user := os.Getenv("REPQUEST_TEST_POSTGRES_USER")
	if user == "" {
		user = "repquest"
	}

	password := os.Getenv("REPQUEST_TEST_POSTGRES_PASSWORD")
	if password == "" {
		password = "repquest"
	}

	database := os.Getenv("REPQUEST_TEST_POSTGRES_DATABASE")
	if database == "" {
		database = "repquest_test"
	}

	return &Config{
		Driver: "postgres",
		Postgres: PostgresConfig{
			Host:            host,
			Port:            port,
			User:            user,
			Password:        password,
			Database:        database,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 1 * time.Minute,
		},
	}
}

// setupPostgresTestStore opens a PostgreSQL connection for testing and clears
// test data. The test is skipped when REPQUEST_TEST_POSTGRES is not set.
func setupPostgresTestStore(t *testing.T) *Store {
	cfg := getPostgresTestConfig()
	if cfg == nil {
		t.Skip("Skipping PostgreSQL test: REPQUEST_TEST_POSTGRES not set")
	}

	store, err := Open(*cfg)
	if err != nil {
		t.Fatalf("Failed to open PostgreSQL database: %v", err)
	}

	// Clean up test data (in reverse dependency order)
	clear := func() {
		for _, table := range []string{"saves", "profiles"} {
			store.db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		}
	}
	clear()

	t.Cleanup(func() {
		clear()
		store.Close()
	})

	return store
}

func TestPostgresOpen(t *testing.T) {
	store := setupPostgresTestStore(t)

	var result int
	if err := store.db.QueryRow("SELECT 1").Scan(&result); err != nil {
		t.Fatalf("Failed to query PostgreSQL: %v", err)
	}
	if result != 1 {
		t.Errorf("SELECT 1 returned %d", result)
	}
}

func TestPostgresProfileRoundTrip(t *testing.T) {
	store := setupPostgresTestStore(t)

	created, err := store.CreateProfile("pgalex", "1234")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if created.ID == 0 {
		t.Error("Profile ID should not be 0")
	}

	if _, err := store.VerifyPIN("pgalex", "1234"); err != nil {
		t.Errorf("Unlock failed: %v", err)
	}
	if _, err := store.VerifyPIN("pgalex", "9999"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected ErrInvalidPIN, got: %v", err)
	}
}

func TestPostgresCaseInsensitiveNames(t *testing.T) {
	store := setupPostgresTestStore(t)

	if _, err := store.CreateProfile("pgcase", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	// CITEXT makes the unique constraint case-insensitive
	if _, err := store.CreateProfile("PGCase", ""); !errors.Is(err, ErrProfileExists) {
		t.Errorf("Expected ErrProfileExists for case-insensitive duplicate, got: %v", err)
	}

	profile, err := store.GetProfileByName("PGCASE")
	if err != nil {
		t.Fatalf("Case-insensitive lookup failed: %v", err)
	}
	if profile.Name != "pgcase" {
		t.Errorf("Expected name 'pgcase', got '%s'", profile.Name)
	}
}

func TestPostgresSaveUpsert(t *testing.T) {
	store := setupPostgresTestStore(t)

	profile, err := store.CreateProfile("pgsaves", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	for _, player := range []string{`{"level":1}`, `{"level":2}`} {
		err := store.WriteSave(&Save{
			ProfileID: profile.ID, Slot: 1, Version: "1.0",
			Player: player, Quests: "{}", Inventory: "{}", Settings: "{}",
		})
		if err != nil {
			t.Fatalf("Failed to write save: %v", err)
		}
	}

	save, err := store.GetSave(profile.ID, 1)
	if err != nil {
		t.Fatalf("Failed to get save: %v", err)
	}
	if save.Player != `{"level":2}` {
		t.Errorf("Player = %q, want overwritten value", save.Player)
	}

	count, err := store.CountSaves()
	if err != nil {
		t.Fatalf("Failed to count saves: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 save after upsert, got %d", count)
	}
}
