package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chalkline-games/repquest/internal/minigame"
	"github.com/chalkline-games/repquest/internal/stats"
)

// rhythmBarCells is the drawn width of the timing track. Odd, so the
// center of the zone lands on a cell.
const rhythmBarCells = 41

func (m Model) renderMinigame(contentH int) string {
	var body string
	if m.outcome != nil {
		body = m.renderResult()
	} else {
		switch g := m.game.Sessions.Current().(type) {
		case *minigame.Rhythm:
			body = renderRhythm(g)
		case *minigame.Hold:
			body = renderHold(g)
		case *minigame.Reaction:
			body = renderReaction(g)
		default:
			body = mutedStyle.Render("...")
		}
	}
	return lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, overlayStyle.Render(body))
}

func renderRhythm(g *minigame.Rhythm) string {
	lines := []string{
		titleStyle.Render(g.Equipment()),
		"",
		rhythmTrack(g),
		"",
		textStyle.Render(fmt.Sprintf("reps %d/%d", g.CurrentReps, g.TargetReps())),
	}
	if g.FeedbackTimer > 0 && g.Feedback != "" {
		lines = append(lines, feedbackStyle(g.Feedback).Render(g.Feedback))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, "", mutedStyle.Render("space: press in the zone   esc: give up"))
	return strings.Join(lines, "\n")
}

// rhythmTrack draws the sweep bar: dim track, shaded scoring zone,
// bright center zone, and the marker on top.
func rhythmTrack(g *minigame.Rhythm) string {
	low, high := g.Zone()
	perfectLow, perfectHigh := g.PerfectZone()
	marker := int(g.BarPosition/100*float64(rhythmBarCells-1) + 0.5)

	var b strings.Builder
	for i := 0; i < rhythmBarCells; i++ {
		pos := float64(i) / float64(rhythmBarCells-1) * 100
		switch {
		case i == marker:
			b.WriteString(playerStyle.Render("█"))
		case pos >= perfectLow && pos <= perfectHigh:
			b.WriteString(goodStyle.Render("▓"))
		case pos >= low && pos <= high:
			b.WriteString(goodStyle.Render("░"))
		default:
			b.WriteString(barEmptyStyle.Render("─"))
		}
	}
	return b.String()
}

func feedbackStyle(feedback string) lipgloss.Style {
	switch {
	case strings.Contains(feedback, "PERFECT"):
		return warnStyle
	case strings.Contains(feedback, "Miss"):
		return badStyle
	}
	return goodStyle
}

func renderHold(g *minigame.Hold) string {
	status := mutedStyle.Render("press and hold SPACE")
	if g.Holding {
		status = goodStyle.Render("HOLDING")
	}

	lines := []string{
		titleStyle.Render(g.Equipment()),
		"",
		bar(40, g.Progress()),
		"",
		textStyle.Render(fmt.Sprintf("%.1fs to go", g.Remaining())),
		status,
		"",
		mutedStyle.Render("keep space held   esc: give up"),
	}
	return strings.Join(lines, "\n")
}

func renderReaction(g *minigame.Reaction) string {
	frac := 0.0
	if g.TimeLimit() > 0 {
		frac = g.TimeRemaining / g.TimeLimit()
	}

	lines := []string{
		titleStyle.Render(g.Equipment()),
		"",
		textStyle.Render("press  ") + selectStyle.Render(keySymbol(g.TargetKey)),
		"",
		bar(30, frac),
		"",
		textStyle.Render(fmt.Sprintf("%d/%d", g.KeysPressed, g.KeyCount())),
		"",
		mutedStyle.Render("hit the prompt before the timer empties   esc: give up"),
	}
	return strings.Join(lines, "\n")
}

// keySymbol turns a canonical key name into its display form.
func keySymbol(name string) string {
	switch name {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return strings.ToUpper(name)
}

func (m Model) renderResult() string {
	out := m.outcome
	result, _ := m.game.Sessions.Result()

	head := goodStyle.Render("WORKOUT COMPLETE")
	if !result.Success {
		head = badStyle.Render("WORKOUT FAILED")
	}

	lines := []string{head, ""}
	if result.Perfect {
		lines = append(lines, warnStyle.Render("PERFECT FORM!"))
	}
	lines = append(lines, textStyle.Render(fmt.Sprintf("score %d", result.Score)))
	lines = append(lines, textStyle.Render(fmt.Sprintf("+%d XP  +$%d", out.XPGained, out.CurrencyGained)))
	if out.StatTrained != "" {
		lines = append(lines, goodStyle.Render("+1 "+statLabel(out.StatTrained)))
	}
	for _, q := range out.Quests {
		lines = append(lines, goodStyle.Render(fmt.Sprintf("quest done: %s  +%d XP  +$%d", q.Name, q.XP, q.Currency)))
	}
	if out.LeveledUp {
		lines = append(lines, "", warnStyle.Render(fmt.Sprintf("LEVEL UP!  now level %d", out.NewLevel)))
	}
	lines = append(lines, "", mutedStyle.Render("press any key"))
	return strings.Join(lines, "\n")
}

func statLabel(name stats.Name) string {
	s := strings.ToUpper(string(name))
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}
