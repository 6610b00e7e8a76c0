// Package save moves game state between the live engines and a
// profile's save slots. Each engine serializes to its own JSON section
// so a corrupt section can be reported by name without guessing which
// part of the save went bad.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/chalkline-games/repquest/internal/database"
	"github.com/chalkline-games/repquest/internal/items"
	"github.com/chalkline-games/repquest/internal/logger"
	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/quest"
)

// Version is written into every save row. Loads tolerate other
// versions with a warning; only unparseable sections fail a load.
const Version = "1.0"

// Settings carries per-save presentation preferences. The UI applies
// them on load and they ride along on every write.
type Settings struct {
	ShowHelp       bool `json:"show_help"`
	TrainerEnabled bool `json:"trainer_enabled"`
}

// DefaultSettings returns the settings for a fresh save.
func DefaultSettings() Settings {
	return Settings{TrainerEnabled: true}
}

// inventorySection wraps the stack list so the column's empty-object
// default decodes as an empty inventory.
type inventorySection struct {
	Items []items.ItemState `json:"items"`
}

// Manager assembles save rows from the engines and restores them.
type Manager struct {
	store *database.Store
}

// NewManager creates a manager backed by the given store.
func NewManager(store *database.Store) *Manager {
	return &Manager{store: store}
}

// Write captures the engines into the profile's slot, overwriting any
// save already there.
func (m *Manager) Write(profileID int64, slot int, p *player.Player, quests *quest.Engine, inv *items.Inventory, settings Settings) error {
	playerJSON, err := json.Marshal(p.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode player section: %w", err)
	}
	questsJSON, err := json.Marshal(quests.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode quests section: %w", err)
	}
	inventoryJSON, err := json.Marshal(inventorySection{Items: inv.Snapshot()})
	if err != nil {
		return fmt.Errorf("failed to encode inventory section: %w", err)
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings section: %w", err)
	}

	row := &database.Save{
		ProfileID: profileID,
		Slot:      slot,
		Version:   Version,
		Player:    string(playerJSON),
		Quests:    string(questsJSON),
		Inventory: string(inventoryJSON),
		Settings:  string(settingsJSON),
	}
	if err := m.store.WriteSave(row); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	logger.Debug("Game saved",
		"profile_id", profileID,
		"slot", slot,
		"level", p.Level,
		"active_quests", len(quests.ActiveQuests()),
		"inventory_slots", inv.SlotsUsed())

	return nil
}

// Load reads the profile's slot and applies it to the engines. Every
// section is decoded before any engine is touched, so a failed load
// leaves the engines exactly as they were. Returns the stored settings.
func (m *Manager) Load(profileID int64, slot int, p *player.Player, quests *quest.Engine, inv *items.Inventory) (Settings, error) {
	row, err := m.store.GetSave(profileID, slot)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read save: %w", err)
	}
	if row.Version != Version {
		logger.Warning("Loading save with unexpected version",
			"profile_id", profileID,
			"slot", slot,
			"version", row.Version)
	}

	var playerSnap player.Snapshot
	if err := decodeSection("player", row.Player, &playerSnap); err != nil {
		return Settings{}, err
	}
	var questSnap quest.Snapshot
	if err := decodeSection("quests", row.Quests, &questSnap); err != nil {
		return Settings{}, err
	}
	var invSection inventorySection
	if err := decodeSection("inventory", row.Inventory, &invSection); err != nil {
		return Settings{}, err
	}
	settings := DefaultSettings()
	if err := decodeSection("settings", row.Settings, &settings); err != nil {
		return Settings{}, err
	}

	p.Restore(playerSnap)
	quests.Restore(questSnap)
	inv.Restore(invSection.Items)

	logger.Info("Game loaded",
		"profile_id", profileID,
		"slot", slot,
		"level", p.Level,
		"saved_at", row.SavedAt)

	return settings, nil
}

// Exists reports whether the profile has a save in the slot.
func (m *Manager) Exists(profileID int64, slot int) (bool, error) {
	return m.store.SaveExists(profileID, slot)
}

// Delete removes the profile's save in the slot.
func (m *Manager) Delete(profileID int64, slot int) error {
	return m.store.DeleteSave(profileID, slot)
}

// decodeSection unmarshals one named section of a save row. An empty
// section keeps whatever the destination already holds.
func decodeSection(name, data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to parse %s section: %w", name, err)
	}
	return nil
}
