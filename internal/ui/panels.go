package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chalkline-games/repquest/internal/leveling"
)

const panelWidth = 64

// renderPanel centers a titled box in the content area.
func (m Model) renderPanel(title string, lines []string, contentH int) string {
	w := panelWidth
	if w > m.width-4 {
		w = m.width - 4
	}
	body := titleStyle.Render(title) + "\n\n" + strings.Join(lines, "\n")
	box := panelStyle.Width(w).Render(body)
	return lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, box)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) renderMenu(contentH int) string {
	labels := []string{
		"Resume",
		"Save game",
		"Coach chatter: " + onOff(m.settings.TrainerEnabled),
		"Key hints: " + onOff(m.settings.ShowHelp),
		"Save and quit",
		"Quit without saving",
	}

	var lines []string
	for i, label := range labels {
		if i == m.menuIndex {
			lines = append(lines, selectStyle.Render("> "+label))
		} else {
			lines = append(lines, textStyle.Render("  "+label))
		}
	}

	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("slot %d", m.slot)))
	if m.autosave > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("autosave every %.0fs", m.autosave)))
	}
	return m.renderPanel("PAUSED", lines, contentH)
}

func (m Model) renderQuests(contentH int) string {
	views := m.game.Quests.ActiveViews()

	var lines []string
	if len(views) == 0 {
		lines = append(lines, mutedStyle.Render("all gym goals finished, champion"))
	}
	for _, v := range views {
		frac := 0.0
		if v.Goal > 0 {
			frac = float64(v.Progress) / float64(v.Goal)
		}
		lines = append(lines,
			textStyle.Render(v.Name)+mutedStyle.Render(fmt.Sprintf("  +%d XP +$%d", v.XPReward, v.CurrencyReward)),
			mutedStyle.Render("  "+v.Description),
			"  "+bar(24, frac)+mutedStyle.Render(fmt.Sprintf(" %d/%d", v.Progress, v.Goal)),
			"")
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d finished so far", m.game.Quests.CompletedCount())))
	return m.renderPanel("GYM GOALS", lines, contentH)
}

func (m Model) renderIRL(contentH int) string {
	views := m.game.Quests.IRLViews()

	var lines []string
	for i, v := range views {
		num := fmt.Sprintf("[%d] ", i+1)
		if v.Completed {
			lines = append(lines, goodStyle.Render(num+v.Name+"  done"))
		} else {
			lines = append(lines, textStyle.Render(num+v.Name)+mutedStyle.Render(fmt.Sprintf("  +%d XP +$%d", v.XPReward, v.CurrencyReward)))
		}
		lines = append(lines, mutedStyle.Render("    "+v.Description), "")
	}

	lines = append(lines,
		textStyle.Render(fmt.Sprintf("streak %d  best %d", m.game.Quests.CurrentStreak(), m.game.Quests.BestStreak())),
		mutedStyle.Render(fmt.Sprintf("reward bonus x%.2f", m.game.Quests.StreakBonus())),
		"",
		mutedStyle.Render("press a number once you've done the real thing"))
	return m.renderPanel("REAL-WORLD TRAINING", lines, contentH)
}

func (m Model) renderShop(contentH int) string {
	goods := m.game.Catalog.All()
	inv := m.game.Inventory

	var lines []string
	for i, item := range goods {
		have := ""
		if q := inv.Quantity(item.ID); q > 0 {
			have = fmt.Sprintf("  have %d", q)
		}
		line := fmt.Sprintf("%-18s $%-4d%s", item.Name, item.Price, have)
		if i == m.shopIndex {
			lines = append(lines, selectStyle.Render("> "+line))
			lines = append(lines, mutedStyle.Render("    "+item.Description))
		} else {
			lines = append(lines, textStyle.Render("  "+line))
		}
	}

	lines = append(lines, "",
		textStyle.Render(fmt.Sprintf("cash $%d", m.game.Player.Currency))+
			mutedStyle.Render(fmt.Sprintf("   slots %d/%d", inv.SlotsUsed(), inv.MaxSlots())),
		mutedStyle.Render("enter: buy"))
	return m.renderPanel("SUPPLEMENT SHOP", lines, contentH)
}

func (m Model) renderInventory(contentH int) string {
	stacks := m.game.Inventory.Stacks()

	var lines []string
	if len(stacks) == 0 {
		lines = append(lines, mutedStyle.Render("nothing here, hit the shop"))
	}

	sel := m.invIndex
	if sel >= len(stacks) {
		sel = len(stacks) - 1
	}
	for i, stack := range stacks {
		line := fmt.Sprintf("%-18s x%d", stack.Item.Name, stack.Quantity)
		if i == sel {
			lines = append(lines, selectStyle.Render("> "+line))
			lines = append(lines, mutedStyle.Render("    "+stack.Item.Description))
		} else {
			lines = append(lines, textStyle.Render("  "+line))
		}
	}

	lines = append(lines, "",
		mutedStyle.Render(fmt.Sprintf("slots %d/%d   enter: use", m.game.Inventory.SlotsUsed(), m.game.Inventory.MaxSlots())))
	return m.renderPanel("GYM BAG", lines, contentH)
}

func (m Model) renderStats(contentH int) string {
	p := m.game.Player
	q := m.game.Quests

	next := p.XPToNext()
	xpFrac := 1.0
	if next > 0 {
		xpFrac = float64(p.XP) / float64(next)
	}

	lines := []string{
		textStyle.Render(p.Name) + mutedStyle.Render(fmt.Sprintf("  level %d", p.Level)),
		"XP " + bar(26, xpFrac) + mutedStyle.Render(fmt.Sprintf(" %d/%d", p.XP, next)),
		"",
		textStyle.Render(fmt.Sprintf("strength   %2d", p.Stats.Strength)),
		textStyle.Render(fmt.Sprintf("endurance  %2d", p.Stats.Endurance)),
		textStyle.Render(fmt.Sprintf("speed      %2d", p.Stats.Speed)),
		textStyle.Render("build      ") + warnStyle.Render(leveling.MuscleTierName(p.MuscleLevel)),
		"",
		textStyle.Render(fmt.Sprintf("cash       $%d", p.Currency)),
		textStyle.Render(fmt.Sprintf("stamina    %.0f/%.0f", p.Stamina, p.MaxStamina())),
		"",
		textStyle.Render(fmt.Sprintf("streak     %d (best %d)", q.CurrentStreak(), q.BestStreak())),
		textStyle.Render(fmt.Sprintf("workouts   %d", p.Statistics.GetTotalWorkouts())),
		textStyle.Render(fmt.Sprintf("quests     %d", q.CompletedCount())),
	}

	if buffs := p.ActiveBuffs(); len(buffs) > 0 {
		lines = append(lines, "")
		for _, b := range buffs {
			lines = append(lines, goodStyle.Render(fmt.Sprintf("%s x%.2g  %.0fs left", buffLabel(b.Effect), b.Value, b.Remaining)))
		}
	}
	return m.renderPanel("MIRROR CHECK", lines, contentH)
}

func (m Model) renderHelp(contentH int) string {
	full := m.help
	full.ShowAll = true

	lines := []string{
		full.View(m.keys),
		"",
		titleStyle.Render("MAP"),
		mutedStyle.Render("@ you   & gym-goers   ≈ pool   : track"),
		mutedStyle.Render("B bench  S squat  T treadmill  D dumbbells"),
		mutedStyle.Render("U pull-up  L lat pulldown  C cable"),
		mutedStyle.Render("$ shop   G coach   M mirror"),
		"",
		titleStyle.Render("HOW IT WORKS"),
		mutedStyle.Render("Walk up to a machine and press e to start a set."),
		mutedStyle.Render("Swimming laps trains endurance on its own."),
		mutedStyle.Render("Log real workouts in the IRL panel to grow your"),
		mutedStyle.Render("streak; the streak multiplies IRL rewards up to x2."),
	}
	return m.renderPanel("CONTROLS", lines, contentH)
}
