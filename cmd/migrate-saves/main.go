// migrate-saves copies profiles and saves from SQLite to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-saves \
//	    -sqlite data/repquest.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user repquest \
//	    -pg-password repquest \
//	    -pg-database repquest
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chalkline-games/repquest/internal/database"
)

func main() {
	// Parse command-line flags
	sqlitePath := flag.String("sqlite", "data/repquest.db", "Path to SQLite database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "repquest", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "repquest", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "repquest", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL Save Migration Tool")
	log.Println("========================================")

	// Open SQLite database
	log.Printf("Opening SQLite database: %s", *sqlitePath)
	sqliteDB, err := sql.Open("sqlite", *sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}
	defer sqliteDB.Close()

	// Verify SQLite connection
	if err := sqliteDB.Ping(); err != nil {
		log.Fatalf("Failed to connect to SQLite database: %v", err)
	}

	// Open PostgreSQL through the store so the schema and citext
	// extension are created exactly as the game would create them.
	pgConfig := database.Config{
		Driver: "postgres",
		Postgres: database.PostgresConfig{
			Host:     *pgHost,
			Port:     *pgPort,
			User:     *pgUser,
			Password: *pgPassword,
			Database: *pgDatabase,
			SSLMode:  *pgSSLMode,
		},
	}
	log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	store, err := database.Open(pgConfig)
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer store.Close()
	pgDB := store.DB()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	// Migrate each table; profiles first so save rows have their FK target
	tables := []struct {
		name    string
		migrate func(*sql.DB, *sql.DB, bool) (int64, error)
	}{
		{"profiles", migrateProfiles},
		{"saves", migrateSaves},
	}

	var totalRows int64
	for _, t := range tables {
		log.Printf("Migrating table: %s", t.name)
		count, err := t.migrate(sqliteDB, pgDB, *dryRun)
		if err != nil {
			log.Fatalf("Failed to migrate %s: %v", t.name, err)
		}
		log.Printf("  Migrated %d rows", count)
		totalRows += count
	}

	log.Println("========================================")
	log.Printf("Migration complete! Total rows migrated: %d", totalRows)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}

func migrateProfiles(sqlite, pg *sql.DB, dryRun bool) (int64, error) {
	rows, err := sqlite.Query(`
		SELECT id, name, pin_hash, created_at, last_played
		FROM profiles
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	for rows.Next() {
		var id int64
		var name string
		var pinHash sql.NullString
		var createdAt string
		var lastPlayed sql.NullString

		if err := rows.Scan(&id, &name, &pinHash, &createdAt, &lastPlayed); err != nil {
			return count, err
		}

		if dryRun {
			count++
			continue
		}

		// Check if the profile already exists
		var existingID int64
		err := pg.QueryRow(`SELECT id FROM profiles WHERE id = $1`, id).Scan(&existingID)
		if err == nil {
			// Profile exists, skip
			continue
		}

		// Insert with explicit ID so save rows keep their profile link
		_, err = pg.Exec(`
			INSERT INTO profiles (id, name, pin_hash, created_at, last_played)
			VALUES ($1, $2, $3, $4, $5)
		`, id, name, nullString(pinHash), parseTime(createdAt), parseNullTime(lastPlayed))
		if err != nil {
			if !strings.Contains(err.Error(), "duplicate key") {
				return count, err
			}
		} else {
			count++
		}
	}

	// Reset the sequence to avoid ID conflicts for new records
	if !dryRun {
		_, _ = pg.Exec(`SELECT setval('profiles_id_seq', COALESCE((SELECT MAX(id) FROM profiles), 0) + 1, false)`)
	}

	return count, rows.Err()
}

func migrateSaves(sqlite, pg *sql.DB, dryRun bool) (int64, error) {
	rows, err := sqlite.Query(`
		SELECT id, profile_id, slot, version, saved_at,
		       COALESCE(player, '{}'), COALESCE(quests, '{}'),
		       COALESCE(inventory, '{}'), COALESCE(settings, '{}')
		FROM saves
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var count int64
	for rows.Next() {
		var id, profileID int64
		var slot int
		var version, savedAt string
		var player, quests, inventory, settings string

		if err := rows.Scan(&id, &profileID, &slot, &version, &savedAt,
			&player, &quests, &inventory, &settings); err != nil {
			return count, err
		}

		if dryRun {
			count++
			continue
		}

		var existingID int64
		err := pg.QueryRow(`SELECT id FROM saves WHERE id = $1`, id).Scan(&existingID)
		if err == nil {
			continue
		}

		_, err = pg.Exec(`
			INSERT INTO saves (id, profile_id, slot, version, saved_at, player, quests, inventory, settings)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, id, profileID, slot, version, parseTime(savedAt), player, quests, inventory, settings)
		if err != nil {
			if !strings.Contains(err.Error(), "duplicate key") {
				return count, err
			}
		} else {
			count++
		}
	}

	if !dryRun {
		_, _ = pg.Exec(`SELECT setval('saves_id_seq', COALESCE((SELECT MAX(id) FROM saves), 0) + 1, false)`)
	}

	return count, rows.Err()
}

// Helper functions

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	// Try various formats
	formats := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return &t
		}
	}
	log.Printf("Warning: Could not parse time: %s", s)
	return nil
}

func parseNullTime(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	return parseTime(ns.String)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func init() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Migrates RepQuest profiles and saves from SQLite to PostgreSQL.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -sqlite data/repquest.db -pg-host localhost -pg-user repquest -pg-password repquest -pg-database repquest\n", os.Args[0])
	}
}
