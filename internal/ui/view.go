package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chalkline-games/repquest/internal/leveling"
	"github.com/chalkline-games/repquest/internal/player"
)

const sidebarWidth = 32

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	title := m.renderTitleBar()
	coach := m.renderCoachBar()
	footer := m.renderFooter()

	contentH := m.height - lipgloss.Height(title) - lipgloss.Height(coach) - lipgloss.Height(footer)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.state {
	case statePlaying:
		content = m.renderFloor(contentH)
	case stateMinigame:
		content = m.renderMinigame(contentH)
	case stateMenu:
		content = m.renderMenu(contentH)
	case stateQuests:
		content = m.renderQuests(contentH)
	case stateIRL:
		content = m.renderIRL(contentH)
	case stateShop:
		content = m.renderShop(contentH)
	case stateInventory:
		content = m.renderInventory(contentH)
	case stateStats:
		content = m.renderStats(contentH)
	case stateHelp:
		content = m.renderHelp(contentH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, content, coach, footer)
}

func (m Model) renderTitleBar() string {
	p := m.game.Player
	left := titleStyle.Render("REPQUEST") + mutedStyle.Render("  "+p.Name)
	right := fmt.Sprintf("Lv %d  $%d  streak %d", p.Level, p.Currency, m.game.Quests.CurrentStreak())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + textStyle.Render(right)
}

// renderCoachBar is one line tall whether or not the coach has anything
// to say, so the map doesn't jump when a message appears.
func (m Model) renderCoachBar() string {
	if m.settings.TrainerEnabled {
		if text, ok := m.game.Coach.Current(); ok {
			return coachStyle.MaxWidth(m.width).Render("coach: " + text)
		}
	}
	return ""
}

func (m Model) renderFooter() string {
	hint := mutedStyle.Render(m.contextHint())
	status := warnStyle.Render(m.status)

	gap := m.width - lipgloss.Width(hint) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	line := hint + strings.Repeat(" ", gap) + status

	if !m.settings.ShowHelp {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, m.help.View(m.keys))
}

func (m Model) contextHint() string {
	if m.state != statePlaying {
		return ""
	}
	p := m.game.Player

	fx, fy := p.FacingTile()
	if tile, ok := m.game.World.TileAt(fx, fy); ok && tile.Interactive {
		return "[e] " + tile.Name
	}
	if p.Swimming {
		return "swimming"
	}
	return ""
}

// renderFloor is the main play screen: the map with a status sidebar.
// Narrow terminals drop the sidebar.
func (m Model) renderFloor(contentH int) string {
	mapW := m.width - sidebarWidth - 1
	if mapW < 24 {
		return fill(m.renderMap(m.width, contentH), m.width, contentH)
	}

	floor := fill(m.renderMap(mapW, contentH), mapW, contentH)
	side := fill(m.renderSidebar(), sidebarWidth, contentH)
	return lipgloss.JoinHorizontal(lipgloss.Top, floor, " ", side)
}

func (m Model) renderSidebar() string {
	p := m.game.Player
	innerW := sidebarWidth - 6
	barW := innerW - 14

	var lines []string
	lines = append(lines, titleStyle.Render(p.Name)+mutedStyle.Render(fmt.Sprintf("  Lv %d", p.Level)))

	next := p.XPToNext()
	xpFrac := 1.0
	if next > 0 {
		xpFrac = float64(p.XP) / float64(next)
	}
	lines = append(lines, "XP  "+bar(barW, xpFrac)+mutedStyle.Render(fmt.Sprintf(" %d/%d", p.XP, next)))
	lines = append(lines, "STA "+bar(barW, p.Stamina/p.MaxStamina())+mutedStyle.Render(fmt.Sprintf(" %.0f", p.Stamina)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("STR %d  END %d  SPD %d", p.Stats.Strength, p.Stats.Endurance, p.Stats.Speed))
	lines = append(lines, mutedStyle.Render("build: ")+textStyle.Render(leveling.MuscleTierName(p.MuscleLevel)))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("cash: $%d", p.Currency)))
	lines = append(lines, "")

	if q, ok := m.game.Quests.CurrentQuest(); ok {
		v := q.View()
		lines = append(lines, mutedStyle.Render("quest: ")+textStyle.Render(v.Name))
		frac := 0.0
		if v.Goal > 0 {
			frac = float64(v.Progress) / float64(v.Goal)
		}
		lines = append(lines, "  "+bar(barW, frac)+mutedStyle.Render(fmt.Sprintf(" %d/%d", v.Progress, v.Goal)))
	}

	done := 0
	irl := m.game.Quests.IRLViews()
	for _, v := range irl {
		if v.Completed {
			done++
		}
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("IRL today %d/%d", done, len(irl))))

	if buffs := p.ActiveBuffs(); len(buffs) > 0 {
		lines = append(lines, "")
		for _, b := range buffs {
			lines = append(lines, goodStyle.Render(fmt.Sprintf("%s x%.2g  %.0fs", buffLabel(b.Effect), b.Value, b.Remaining)))
		}
	}

	return panelStyle.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

func buffLabel(effect string) string {
	switch effect {
	case player.EffectStrengthXPBoost:
		return "STR XP"
	case player.EffectSpeedBoost:
		return "speed"
	case player.EffectAllXPBoost:
		return "all XP"
	}
	return effect
}

// bar renders a fixed-width meter, filled left to right.
func bar(width int, frac float64) string {
	if width < 1 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// fill pads a block to an exact width and height so horizontal joins
// line up.
func fill(s string, w, h int) string {
	return lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(s)
}
