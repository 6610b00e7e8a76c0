package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/workout"
)

// Pause menu entries, in display order.
const (
	menuResume = iota
	menuSave
	menuCoachToggle
	menuHintsToggle
	menuSaveQuit
	menuQuitNoSave
	menuItemCount
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePlaying:
		return m.handlePlayingKey(msg)
	case stateMinigame:
		return m.handleMinigameKey(msg)
	case stateMenu:
		return m.handleMenuKey(msg)
	case stateHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handlePanelKey(msg)
	}
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.state = stateMenu
		m.menuIndex = 0
	case key.Matches(msg, m.keys.Help):
		m.returnState = statePlaying
		m.state = stateHelp
	case key.Matches(msg, m.keys.Panels):
		m.state = panelCycle[0]
	case key.Matches(msg, m.keys.Interact):
		m.interact()
	case key.Matches(msg, m.keys.Sprint):
		m.heldSprint = heldWindow
		m.move(sprintDirection(msg.String()))
	case key.Matches(msg, m.keys.Up):
		m.move("up")
	case key.Matches(msg, m.keys.Down):
		m.move("down")
	case key.Matches(msg, m.keys.Left):
		m.move("left")
	case key.Matches(msg, m.keys.Right):
		m.move("right")
	}
	return m, nil
}

// sprintDirection maps a shifted movement key to its direction.
func sprintDirection(name string) string {
	switch name {
	case "W", "shift+up":
		return "up"
	case "S", "shift+down":
		return "down"
	case "A", "shift+left":
		return "left"
	case "D", "shift+right":
		return "right"
	}
	return ""
}

func (m *Model) move(direction string) {
	if direction == "" {
		return
	}
	m.game.Player.TryMove(direction, m.game.World.Walkable)
}

// interact acts on the tile the player faces: machines start a workout,
// the shop counter and the mirror open their panels, the coach chats.
func (m *Model) interact() {
	p := m.game.Player
	if !p.CanInteract() {
		return
	}

	fx, fy := p.FacingTile()
	tile, ok := m.game.World.TileAt(fx, fy)
	if !ok || !tile.Interactive {
		return
	}

	if tile.Equipment != "" {
		m.startWorkout(tile.Equipment)
		return
	}

	switch tile.Rune {
	case '$':
		m.state = stateShop
		m.shopIndex = 0
	case 'M':
		m.state = stateStats
	case 'G':
		if m.settings.TrainerEnabled {
			m.game.Coach.Show("welcome")
		}
		p.SetInteractCooldown(1.0)
	}
}

func (m *Model) startWorkout(id string) {
	machine, ok := m.game.Machines.Get(id)
	if !ok {
		m.setStatus("out of order")
		return
	}
	if !m.game.Sessions.Start(machine.Launch()) {
		return
	}

	m.outcome = nil
	m.state = stateMinigame
	if m.settings.TrainerEnabled {
		m.game.Coach.OnEquipmentInteract(machine.Name)
	}
	m.game.Player.SetInteractCooldown(0.5)
}

func (m Model) handleMinigameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The reward summary stays up until any key dismisses it.
	if m.outcome != nil {
		m.game.Sessions.Clear()
		m.outcome = nil
		m.state = statePlaying
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		m.game.Sessions.Clear()
		m.state = statePlaying
		m.setStatus("workout abandoned")
		return m, nil
	}

	name := keyName(msg)
	if name == minigame.KeyAction {
		m.heldAction = heldWindow
	}
	m.game.Sessions.HandleInput(name)
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = statePlaying
	case key.Matches(msg, m.keys.Up):
		m.menuIndex--
		if m.menuIndex < 0 {
			m.menuIndex = menuItemCount - 1
		}
	case key.Matches(msg, m.keys.Down):
		m.menuIndex = (m.menuIndex + 1) % menuItemCount
	case key.Matches(msg, m.keys.Confirm):
		return m.menuSelect()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) menuSelect() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case menuResume:
		m.state = statePlaying
	case menuSave:
		if err := m.saveGame(); err == nil {
			m.setStatus("game saved")
		}
		m.state = statePlaying
	case menuCoachToggle:
		m.settings.TrainerEnabled = !m.settings.TrainerEnabled
	case menuHintsToggle:
		m.settings.ShowHelp = !m.settings.ShowHelp
	case menuSaveQuit:
		return m.quit()
	case menuQuitNoSave:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) {
		m.state = m.returnState
	}
	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.state = statePlaying
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.returnState = m.state
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, m.keys.Panels):
		m.state = nextPanel(m.state)
		return m, nil
	}

	switch m.state {
	case stateIRL:
		return m.handleIRLKey(msg)
	case stateShop:
		return m.handleShopKey(msg)
	case stateInventory:
		return m.handleInventoryKey(msg)
	}
	return m, nil
}

// nextPanel steps through the Tab cycle; the last panel wraps back to
// the map.
func nextPanel(s state) state {
	for i, panel := range panelCycle {
		if panel == s {
			if i == len(panelCycle)-1 {
				return statePlaying
			}
			return panelCycle[i+1]
		}
	}
	return panelCycle[0]
}

func (m Model) handleIRLKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return m, nil
	}
	index := int(s[0] - '1')
	if index >= len(m.game.Quests.IRLViews()) {
		return m, nil
	}

	out, ok := m.game.Rewards.ApplyIRLCompletion(index)
	if !ok {
		m.setStatus("already logged today")
		return m, nil
	}
	m.setStatus(irlStatus(out, m.game.Quests.CurrentStreak()))
	return m, nil
}

func irlStatus(out workout.Outcome, streak int) string {
	xp, currency := 0, 0
	for _, q := range out.Quests {
		xp += q.XP
		currency += q.Currency
	}
	return fmt.Sprintf("logged! +%d XP  +$%d  streak %d", xp, currency, streak)
}

func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goods := m.game.Catalog.All()
	if len(goods) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.shopIndex--
		if m.shopIndex < 0 {
			m.shopIndex = len(goods) - 1
		}
	case key.Matches(msg, m.keys.Down):
		m.shopIndex = (m.shopIndex + 1) % len(goods)
	case key.Matches(msg, m.keys.Confirm):
		item := goods[m.shopIndex]
		if err := m.game.Inventory.Purchase(item, m.game.Player); err != nil {
			m.setStatus(err.Error())
			return m, nil
		}
		m.setStatus(fmt.Sprintf("bought %s for $%d", item.Name, item.Price))
	}
	return m, nil
}

func (m Model) handleInventoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stacks := m.game.Inventory.Stacks()
	if len(stacks) == 0 {
		return m, nil
	}
	if m.invIndex >= len(stacks) {
		m.invIndex = len(stacks) - 1
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.invIndex--
		if m.invIndex < 0 {
			m.invIndex = len(stacks) - 1
		}
	case key.Matches(msg, m.keys.Down):
		m.invIndex = (m.invIndex + 1) % len(stacks)
	case key.Matches(msg, m.keys.Confirm):
		stack := stacks[m.invIndex]
		item, err := m.game.Inventory.Use(stack.Item.ID, m.game.Player)
		if err != nil {
			m.setStatus(err.Error())
			return m, nil
		}
		m.game.Player.Statistics.RecordItemUsed()
		if m.game.Feed != nil {
			m.game.Feed.ItemUsed(item.Name)
		}
		m.setStatus("used " + item.Name)
	}
	return m, nil
}

// quit saves and exits. A failed save still quits so a broken database
// can't trap the player; the error is in the log.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.saveGame()
	return m, tea.Quit
}
