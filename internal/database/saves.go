package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrSaveNotFound is returned when a save slot lookup fails.
var ErrSaveNotFound = errors.New("save not found")

// Save holds one save slot's serialized game state. The player, quests,
// inventory, and settings columns each carry an independent JSON document so
// a corrupt section can be reported without losing the others.
type Save struct {
	ID        int64
	ProfileID int64
	Slot      int
	Version   string
	SavedAt   time.Time
	Player    string
	Quests    string
	Inventory string
	Settings  string
}

// WriteSave inserts or replaces the save for the given profile and slot.
func (s *Store) WriteSave(save *Save) error {
	query := s.qb.Build(
		`INSERT INTO saves (profile_id, slot, version, player, quests, inventory, settings, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (profile_id, slot) DO UPDATE SET
			version = excluded.version,
			player = excluded.player,
			quests = excluded.quests,
			inventory = excluded.inventory,
			settings = excluded.settings,
			saved_at = CURRENT_TIMESTAMP`,
	)

	_, err := s.db.Exec(query,
		save.ProfileID, save.Slot, save.Version,
		save.Player, save.Quests, save.Inventory, save.Settings,
	)
	if err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// GetSave retrieves the save for the given profile and slot.
func (s *Store) GetSave(profileID int64, slot int) (*Save, error) {
	row := s.db.QueryRow(
		s.qb.Build(
			`SELECT id, profile_id, slot, version, saved_at, player, quests, inventory, settings
			 FROM saves WHERE profile_id = ? AND slot = ?`,
		),
		profileID, slot,
	)

	sv, err := scanSaveRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return sv, nil
}

// ListSaves returns all saves for a profile ordered by slot.
func (s *Store) ListSaves(profileID int64) ([]*Save, error) {
	rows, err := s.db.Query(
		s.qb.Build(
			`SELECT id, profile_id, slot, version, saved_at, player, quests, inventory, settings
			 FROM saves WHERE profile_id = ? ORDER BY slot`,
		),
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query saves: %w", err)
	}
	defer rows.Close()

	var saves []*Save
	for rows.Next() {
		sv, err := scanSave(rows)
		if err != nil {
			return nil, err
		}
		saves = append(saves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saves: %w", err)
	}

	return saves, nil
}

// DeleteSave removes the save for the given profile and slot.
func (s *Store) DeleteSave(profileID int64, slot int) error {
	result, err := s.db.Exec(
		s.qb.Build("DELETE FROM saves WHERE profile_id = ? AND slot = ?"),
		profileID, slot,
	)
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrSaveNotFound
	}

	return nil
}

// SaveExists checks if a save exists for the given profile and slot.
func (s *Store) SaveExists(profileID int64, slot int) (bool, error) {
	var count int
	err := s.db.QueryRow(
		s.qb.Build("SELECT COUNT(*) FROM saves WHERE profile_id = ? AND slot = ?"),
		profileID, slot,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check save existence: %w", err)
	}
	return count > 0, nil
}

// CountSaves returns the total number of saves across all profiles.
func (s *Store) CountSaves() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM saves").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count saves: %w", err)
	}
	return count, nil
}

// scanSave scans a save from a *sql.Rows.
func scanSave(rows *sql.Rows) (*Save, error) {
	var sv Save

	err := rows.Scan(
		&sv.ID, &sv.ProfileID, &sv.Slot, &sv.Version, &sv.SavedAt,
		&sv.Player, &sv.Quests, &sv.Inventory, &sv.Settings,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan save: %w", err)
	}

	return &sv, nil
}

// scanSaveRow scans a save from a *sql.Row.
func scanSaveRow(row *sql.Row) (*Save, error) {
	var sv Save

	err := row.Scan(
		&sv.ID, &sv.ProfileID, &sv.Slot, &sv.Version, &sv.SavedAt,
		&sv.Player, &sv.Quests, &sv.Inventory, &sv.Settings,
	)
	if err != nil {
		return nil, err
	}

	return &sv, nil
}
