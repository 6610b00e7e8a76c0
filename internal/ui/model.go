// Package ui is the terminal front end. A single Bubble Tea model owns
// the map screen and layers panel and overlay states on top of it; all
// game rules live in the engine packages, the model only drives them
// and draws their snapshots.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chalkline-games/repquest/internal/equipment"
	"github.com/chalkline-games/repquest/internal/items"
	"github.com/chalkline-games/repquest/internal/logger"
	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/npc"
	"github.com/chalkline-games/repquest/internal/player"
	"github.com/chalkline-games/repquest/internal/quest"
	"github.com/chalkline-games/repquest/internal/save"
	"github.com/chalkline-games/repquest/internal/trainer"
	"github.com/chalkline-games/repquest/internal/workout"
	"github.com/chalkline-games/repquest/internal/world"
)

// tickInterval drives the simulation. 20 frames per second keeps the
// rhythm bar smooth and costs nothing on a modern terminal.
const tickInterval = 50 * time.Millisecond

// maxFrame caps dt after a suspend or a long redraw stall, so buffs and
// stamina don't fast-forward.
const maxFrame = 0.25

// heldWindow treats a key as still down for this long after its last
// event. Terminals report key repeats, never releases, so a hold is a
// recent-press window that each repeat refreshes.
const heldWindow = 0.65

// statusDuration is how long a status line stays up, in seconds.
const statusDuration = 3.0

type state int

const (
	stateMenu state = iota
	statePlaying
	stateMinigame
	stateQuests
	stateIRL
	stateShop
	stateInventory
	stateStats
	stateHelp
)

// panelCycle is the Tab order through the side panels.
var panelCycle = []state{stateQuests, stateIRL, stateShop, stateInventory, stateStats}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Broadcaster receives the one event the UI emits directly. Session,
// quest, level and streak events reach the feed through the workout
// pipeline instead.
type Broadcaster interface {
	ItemUsed(itemName string)
}

// Game bundles the engine systems the UI drives. The game loop
// goroutine owns all of them once the program starts.
type Game struct {
	World     *world.World
	Player    *player.Player
	Quests    *quest.Engine
	Machines  *equipment.Registry
	Catalog   *items.Catalog
	Inventory *items.Inventory
	Coach     *trainer.Trainer
	Crowd     *npc.Manager
	Sessions  *minigame.Manager
	Rewards   *workout.Pipeline

	// Feed is optional; nil when the feed server is disabled.
	Feed Broadcaster
}

// Model is the root Bubble Tea model.
type Model struct {
	game Game

	saves     *save.Manager
	profileID int64
	slot      int
	settings  save.Settings
	autosave  float64 // seconds between autosaves, 0 disables

	state       state
	returnState state // where Back leaves the help screen
	keys        keyMap
	help        help.Model

	// outcome holds the reward summary shown after a mini-game until
	// the player dismisses it.
	outcome *workout.Outcome

	menuIndex int
	shopIndex int
	invIndex  int

	heldAction   float64
	heldSprint   float64
	autosaveLeft float64
	status       string
	statusLeft   float64

	lastTick time.Time
	width    int
	height   int
}

// New assembles the root model. autosaveSeconds of 0 disables the
// autosave timer; quitting still saves.
func New(g Game, saves *save.Manager, profileID int64, slot int, settings save.Settings, autosaveSeconds int) Model {
	m := Model{
		game:      g,
		saves:     saves,
		profileID: profileID,
		slot:      slot,
		settings:  settings,
		autosave:  float64(autosaveSeconds),
		state:     statePlaying,
		keys:      defaultKeys(),
		help:      help.New(),
	}
	m.autosaveLeft = m.autosave

	if settings.TrainerEnabled {
		g.Coach.Welcome()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := tickInterval.Seconds()
		if !m.lastTick.IsZero() {
			dt = now.Sub(m.lastTick).Seconds()
			if dt < 0 {
				dt = 0
			}
			if dt > maxFrame {
				dt = maxFrame
			}
		}
		m.lastTick = now
		m.advance(dt)
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// advance runs one simulation frame.
func (m *Model) advance(dt float64) {
	p := m.game.Player

	if m.heldAction > 0 {
		m.heldAction -= dt
	}
	if m.heldSprint > 0 {
		m.heldSprint -= dt
	}

	p.SetSprinting(m.heldSprint > 0)
	p.SetSwimming(m.game.World.IsWater(p.X, p.Y))
	p.Update(dt)

	moving := p.IdleTime() < 0.25
	m.game.Coach.Update(dt, moving)
	m.game.Crowd.Update(dt, m.game.World)

	if m.state == stateMinigame {
		m.game.Sessions.Update(dt, m.heldAction > 0)
		if m.game.Sessions.Complete() && m.outcome == nil {
			if result, ok := m.game.Sessions.Result(); ok {
				out := m.game.Rewards.ApplySession(result)
				m.outcome = &out
			}
		}
	}

	if m.statusLeft > 0 {
		m.statusLeft -= dt
		if m.statusLeft <= 0 {
			m.status = ""
		}
	}

	// The autosave timer pauses during a workout so a save never lands
	// mid-session.
	if m.autosave > 0 && m.state != stateMinigame {
		m.autosaveLeft -= dt
		if m.autosaveLeft <= 0 {
			m.autosaveLeft = m.autosave
			if err := m.saveGame(); err == nil {
				m.setStatus("autosaved")
			}
		}
	}
}

func (m *Model) saveGame() error {
	err := m.saves.Write(m.profileID, m.slot, m.game.Player, m.game.Quests, m.game.Inventory, m.settings)
	if err != nil {
		logger.Error("Save failed", "profile_id", m.profileID, "slot", m.slot, "error", err)
		m.setStatus("save failed: " + err.Error())
	}
	return err
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusDuration
}

// keyName canonicalizes a key press for the mini-game layer.
func keyName(msg tea.KeyMsg) string {
	s := msg.String()
	if s == " " {
		return minigame.KeyAction
	}
	return s
}
