package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chalkline-games/repquest/internal/npc"
)

// Every tile draws as two terminal cells, which is roughly square on
// common fonts.
const cellWidth = 2

type tileGlyph struct {
	text  string
	style lipgloss.Style
}

var (
	tileWallStyle    = lipgloss.NewStyle().Foreground(colWall)
	tileFloorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#434c5e"))
	tileMachineStyle = lipgloss.NewStyle().Foreground(colAccent).Bold(true)
	tileShopStyle    = lipgloss.NewStyle().Foreground(colWarn).Bold(true)
	tileCoachStyle   = lipgloss.NewStyle().Foreground(colCoach).Bold(true)
	tileMirrorStyle  = lipgloss.NewStyle().Foreground(colText).Bold(true)
	tileWaterStyle   = lipgloss.NewStyle().Foreground(colWater)
	tileDeckStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4c6a80"))
	tileGrassStyle   = lipgloss.NewStyle().Foreground(colGrass)
	tileTrackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a7a5e"))
	tileTreeStyle    = lipgloss.NewStyle().Foreground(colGood).Bold(true)
	tileParkStyle    = lipgloss.NewStyle().Foreground(colGrass).Bold(true)

	playerStyle = lipgloss.NewStyle().Foreground(colPlayer).Bold(true)
)

// tileGlyphs keys on the layout rune, so maps loaded from YAML render
// the same as the built-in one.
var tileGlyphs = map[rune]tileGlyph{
	'#': {"██", tileWallStyle},
	'.': {"· ", tileFloorStyle},
	'B': {"B ", tileMachineStyle},
	'S': {"S ", tileMachineStyle},
	'T': {"T ", tileMachineStyle},
	'D': {"D ", tileMachineStyle},
	'U': {"U ", tileMachineStyle},
	'L': {"L ", tileMachineStyle},
	'C': {"C ", tileMachineStyle},
	'$': {"$ ", tileShopStyle},
	'G': {"G ", tileCoachStyle},
	'M': {"M ", tileMirrorStyle},
	'K': {"K ", tileFloorStyle},
	'+': {"+ ", tileMirrorStyle},
	',': {", ", tileGrassStyle},
	':': {"::", tileTrackStyle},
	'f': {"▒▒", tileTrackStyle},
	't': {"♣ ", tileTreeStyle},
	'~': {"≈≈", tileWaterStyle},
	'e': {"══", tileDeckStyle},
	'p': {"· ", tileDeckStyle},
	'u': {"u ", tileParkStyle},
	'x': {"x ", tileParkStyle},
	'o': {"o ", tileParkStyle},
}

// directionArrows pair with the avatar so the facing tile is visible.
var directionArrows = map[string]string{
	"up":    "^",
	"down":  "v",
	"left":  "<",
	"right": ">",
}

// renderMap draws the camera window around the player. The output is
// exactly rows lines of up to cols tiles each.
func (m Model) renderMap(viewW, viewH int) string {
	w := m.game.World
	p := m.game.Player

	cols := viewW / cellWidth
	if cols > w.Width() {
		cols = w.Width()
	}
	rows := viewH
	if rows > w.Height() {
		rows = w.Height()
	}
	if cols < 1 || rows < 1 {
		return ""
	}

	camX := clamp(p.X-cols/2, 0, w.Width()-cols)
	camY := clamp(p.Y-rows/2, 0, w.Height()-rows)

	occupied := make(map[[2]int]*npc.NPC, m.game.Crowd.Count())
	for _, n := range m.game.Crowd.NPCs() {
		occupied[[2]int{n.X, n.Y}] = n
	}

	var b strings.Builder
	for y := camY; y < camY+rows; y++ {
		if y > camY {
			b.WriteByte('\n')
		}
		for x := camX; x < camX+cols; x++ {
			b.WriteString(m.renderCell(x, y, occupied))
		}
	}
	return b.String()
}

func (m Model) renderCell(x, y int, occupied map[[2]int]*npc.NPC) string {
	p := m.game.Player
	if p.X == x && p.Y == y {
		arrow := directionArrows[p.Direction]
		if arrow == "" {
			arrow = " "
		}
		return playerStyle.Render("@" + arrow)
	}

	if n, ok := occupied[[2]int{x, y}]; ok {
		style := lipgloss.NewStyle().Foreground(shirtColors[n.ColorVariant%len(shirtColors)])
		if n.Exercising() {
			style = style.Bold(true)
		}
		return style.Render("& ")
	}

	tile, ok := m.game.World.TileAt(x, y)
	if !ok {
		return "  "
	}
	glyph, ok := tileGlyphs[tile.Rune]
	if !ok {
		return "  "
	}
	return glyph.style.Render(glyph.text)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
