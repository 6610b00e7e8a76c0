package save

import (
	"time"

	"github.com/chalkline-games/repquest/internal/database"
	"github.com/chalkline-games/repquest/internal/logger"
	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/quest"
)

// Info summarizes one save row for menu display.
type Info struct {
	Slot     int
	SavedAt  time.Time
	Version  string
	Name     string
	Level    int
	Currency int
	Streak   int
}

// Info reads the summary for one slot without touching any engine.
func (m *Manager) Info(profileID int64, slot int) (*Info, error) {
	row, err := m.store.GetSave(profileID, slot)
	if err != nil {
		return nil, err
	}
	return summarize(row)
}

// List returns summaries for all of the profile's saves ordered by
// slot. Rows whose player or quests section cannot be parsed are
// skipped with a warning rather than hiding the readable ones.
func (m *Manager) List(profileID int64) ([]Info, error) {
	rows, err := m.store.ListSaves(profileID)
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(rows))
	for _, row := range rows {
		info, err := summarize(row)
		if err != nil {
			logger.Warning("Skipping unreadable save",
				"profile_id", profileID,
				"slot", row.Slot,
				"error", err)
			continue
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

func summarize(row *database.Save) (*Info, error) {
	var playerSnap player.Snapshot
	if err := decodeSection("player", row.Player, &playerSnap); err != nil {
		return nil, err
	}
	var questSnap quest.Snapshot
	if err := decodeSection("quests", row.Quests, &questSnap); err != nil {
		return nil, err
	}

	return &Info{
		Slot:     row.Slot,
		SavedAt:  row.SavedAt,
		Version:  row.Version,
		Name:     playerSnap.Name,
		Level:    playerSnap.Level,
		Currency: playerSnap.Currency,
		Streak:   questSnap.CurrentStreak,
	}, nil
}
