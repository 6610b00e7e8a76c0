package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chalkline-games/repquest/internal/logger"
)

// bcrypt cost factor (12 is a good balance of security and performance)
const bcryptCost = 12

// ErrProfileNotFound is returned when a profile lookup fails.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists is returned when trying to create a duplicate profile.
var ErrProfileExists = errors.New("profile already exists")

// ErrInvalidPIN is returned when a PIN check fails.
var ErrInvalidPIN = errors.New("incorrect PIN")

// Profile represents a player profile. A profile owns its save slots and may
// carry an optional bcrypt-hashed PIN.
type Profile struct {
	ID         int64
	Name       string
	PINHash    string
	CreatedAt  time.Time
	LastPlayed *time.Time
}

// HasPIN reports whether the profile is protected by a PIN.
func (p *Profile) HasPIN() bool {
	return p.PINHash != ""
}

// CreateProfile creates a new profile. An empty pin leaves the profile
// unprotected; otherwise the pin is hashed with bcrypt before storage.
func (s *Store) CreateProfile(name, pin string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("profile name cannot be empty")
	}

	pinHash, err := hashPIN(pin)
	if err != nil {
		return nil, err
	}

	id, err := s.insertID(
		"INSERT INTO profiles (name, pin_hash) VALUES (?, ?)",
		name, pinHash,
	)
	if err != nil {
		if s.dialect.IsDuplicateKeyError(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &Profile{
		ID:        id,
		Name:      name,
		PINHash:   pinHash.String,
		CreatedAt: time.Now(),
	}, nil
}

// VerifyPIN unlocks a profile by name. Profiles without a PIN unlock with any
// input; protected profiles return ErrInvalidPIN on a wrong pin. A successful
// unlock updates the profile's last played time.
func (s *Store) VerifyPIN(name, pin string) (*Profile, error) {
	profile, err := s.GetProfileByName(name)
	if err != nil {
		return nil, err
	}

	if profile.HasPIN() {
		if err := bcrypt.CompareHashAndPassword([]byte(profile.PINHash), []byte(pin)); err != nil {
			return nil, ErrInvalidPIN
		}
	}

	if err := s.TouchProfile(profile.ID); err != nil {
		// Log but don't fail the unlock
		logger.Warning("Failed to update last played time", "profile", profile.Name, "error", err)
	}

	return profile, nil
}

// GetProfileByName retrieves a profile by name (case-insensitive).
func (s *Store) GetProfileByName(name string) (*Profile, error) {
	row := s.db.QueryRow(
		s.qb.Build("SELECT id, name, pin_hash, created_at, last_played FROM profiles WHERE name = ?"),
		name,
	)

	p, err := scanProfileRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// GetProfileByID retrieves a profile by ID.
func (s *Store) GetProfileByID(profileID int64) (*Profile, error) {
	row := s.db.QueryRow(
		s.qb.Build("SELECT id, name, pin_hash, created_at, last_played FROM profiles WHERE id = ?"),
		profileID,
	)

	p, err := scanProfileRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// ListProfiles returns all profiles, most recently played first.
func (s *Store) ListProfiles() ([]*Profile, error) {
	rows, err := s.db.Query(
		"SELECT id, name, pin_hash, created_at, last_played FROM profiles ORDER BY last_played DESC NULLS LAST, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}

// TouchProfile updates the last_played timestamp for a profile.
func (s *Store) TouchProfile(profileID int64) error {
	_, err := s.db.Exec(
		s.qb.Build("UPDATE profiles SET last_played = CURRENT_TIMESTAMP WHERE id = ?"),
		profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to update last played: %w", err)
	}
	return nil
}

// SetPIN replaces the PIN for a profile. An empty pin removes the protection.
func (s *Store) SetPIN(profileID int64, pin string) error {
	pinHash, err := hashPIN(pin)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		s.qb.Build("UPDATE profiles SET pin_hash = ? WHERE id = ?"),
		pinHash, profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}
	return nil
}

// ChangePIN replaces the PIN after verifying the current one.
func (s *Store) ChangePIN(profileID int64, oldPIN, newPIN string) error {
	profile, err := s.GetProfileByID(profileID)
	if err != nil {
		return err
	}

	if profile.HasPIN() {
		if err := bcrypt.CompareHashAndPassword([]byte(profile.PINHash), []byte(oldPIN)); err != nil {
			return ErrInvalidPIN
		}
	}

	return s.SetPIN(profileID, newPIN)
}

// ProfileExists checks if a profile with the given name exists.
func (s *Store) ProfileExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		s.qb.Build("SELECT COUNT(*) FROM profiles WHERE name = ?"),
		name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return count > 0, nil
}

// DeleteProfile removes a profile and all of its saves.
func (s *Store) DeleteProfile(profileID int64) error {
	result, err := s.db.Exec(
		s.qb.Build("DELETE FROM profiles WHERE id = ?"),
		profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// CountProfiles returns the total number of profiles.
func (s *Store) CountProfiles() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

// hashPIN validates and hashes a PIN. An empty PIN is allowed and stored as NULL.
func hashPIN(pin string) (sql.NullString, error) {
	if pin == "" {
		return sql.NullString{}, nil
	}
	if len(pin) < 4 {
		return sql.NullString{}, errors.New("pin must be at least 4 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	return sql.NullString{String: string(hash), Valid: true}, nil
}

// scanProfile scans a profile from a *sql.Rows.
func scanProfile(rows *sql.Rows) (*Profile, error) {
	var p Profile
	var pinHash sql.NullString
	var lastPlayed sql.NullTime

	if err := rows.Scan(&p.ID, &p.Name, &pinHash, &p.CreatedAt, &lastPlayed); err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if pinHash.Valid {
		p.PINHash = pinHash.String
	}
	if lastPlayed.Valid {
		p.LastPlayed = &lastPlayed.Time
	}

	return &p, nil
}

// scanProfileRow scans a profile from a *sql.Row.
func scanProfileRow(row *sql.Row) (*Profile, error) {
	var p Profile
	var pinHash sql.NullString
	var lastPlayed sql.NullTime

	if err := row.Scan(&p.ID, &p.Name, &pinHash, &p.CreatedAt, &lastPlayed); err != nil {
		return nil, err
	}

	if pinHash.Valid {
		p.PINHash = pinHash.String
	}
	if lastPlayed.Valid {
		p.LastPlayed = &lastPlayed.Time
	}

	return &p, nil
}
