// Package world holds the gym map: a tile grid parsed from ASCII rows,
// with walkability, water, and equipment placement queries.
package world

import (
	"fmt"
	"math"
	"sort"
)

// Zone is the area of the map a tile belongs to
type Zone string

const (
	ZoneGym     Zone = "gym"
	ZonePool    Zone = "pool"
	ZoneOutdoor Zone = "outdoor"
)

// Tile is one cell of the map
type Tile struct {
	Rune        rune
	Name        string
	Walkable    bool
	Interactive bool
	Water       bool
	Equipment   string // equipment id when this tile hosts a machine
	Zone        Zone
}

// Spot is a tile together with its grid position
type Spot struct {
	X, Y int
	Tile Tile
}

// World is the parsed map
type World struct {
	width  int
	height int
	grid   [][]Tile
	spawnX int
	spawnY int
}

// ParseLayout builds a world from ASCII rows. All rows must be the same
// width. Unknown runes become plain floor.
func ParseLayout(rows []string) (*World, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map has no rows")
	}

	w := &World{height: len(rows)}
	for y, row := range rows {
		runes := []rune(row)
		if y == 0 {
			w.width = len(runes)
		} else if len(runes) != w.width {
			return nil, fmt.Errorf("map row %d is %d tiles wide, want %d", y, len(runes), w.width)
		}
		tiles := make([]Tile, len(runes))
		for x, r := range runes {
			tiles[x] = lookupTile(r)
		}
		w.grid = append(w.grid, tiles)
	}

	w.spawnX, w.spawnY = w.findSpawn()
	return w, nil
}

// findSpawn places the player two tiles below the coach, falling back to
// the map center.
func (w *World) findSpawn() (int, int) {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			if w.grid[y][x].Rune == runeCoach && w.Walkable(x, y+2) {
				return x, y + 2
			}
		}
	}
	return w.width / 2, w.height / 2
}

// Width returns the map width in tiles
func (w *World) Width() int {
	return w.width
}

// Height returns the map height in tiles
func (w *World) Height() int {
	return w.height
}

// Spawn returns the player start tile
func (w *World) Spawn() (int, int) {
	return w.spawnX, w.spawnY
}

// TileAt returns the tile at a grid position
func (w *World) TileAt(x, y int) (Tile, bool) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return Tile{}, false
	}
	return w.grid[y][x], true
}

// Walkable reports whether a position can be stepped on. Out-of-bounds
// positions are not walkable.
func (w *World) Walkable(x, y int) bool {
	tile, ok := w.TileAt(x, y)
	return ok && tile.Walkable
}

// IsWater reports whether a position is swimmable water
func (w *World) IsWater(x, y int) bool {
	tile, ok := w.TileAt(x, y)
	return ok && tile.Water
}

// ZoneAt returns the zone a position belongs to
func (w *World) ZoneAt(x, y int) Zone {
	tile, ok := w.TileAt(x, y)
	if !ok {
		return ZoneGym
	}
	return tile.Zone
}

// EquipmentAt returns the equipment id hosted at a position
func (w *World) EquipmentAt(x, y int) (string, bool) {
	tile, ok := w.TileAt(x, y)
	if !ok || tile.Equipment == "" {
		return "", false
	}
	return tile.Equipment, true
}

// EquipmentSpots returns every machine tile on the map, row by row
func (w *World) EquipmentSpots() []Spot {
	var spots []Spot
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			if w.grid[y][x].Equipment != "" {
				spots = append(spots, Spot{X: x, Y: y, Tile: w.grid[y][x]})
			}
		}
	}
	return spots
}

// NearestInteractive returns interactive tiles within radius of a
// position, closest first.
func (w *World) NearestInteractive(x, y int, radius float64) []Spot {
	type candidate struct {
		spot Spot
		dist float64
	}
	var found []candidate
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			tile, ok := w.TileAt(x+dx, y+dy)
			if !ok || !tile.Interactive {
				continue
			}
			dist := math.Hypot(float64(dx), float64(dy))
			if dist <= radius {
				found = append(found, candidate{Spot{X: x + dx, Y: y + dy, Tile: tile}, dist})
			}
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		if found[i].spot.Y != found[j].spot.Y {
			return found[i].spot.Y < found[j].spot.Y
		}
		return found[i].spot.X < found[j].spot.X
	})

	spots := make([]Spot, len(found))
	for i, c := range found {
		spots[i] = c.spot
	}
	return spots
}

// Rows renders the map back to ASCII, for the renderer and tests
func (w *World) Rows() []string {
	rows := make([]string, w.height)
	for y := 0; y < w.height; y++ {
		runes := make([]rune, w.width)
		for x := 0; x < w.width; x++ {
			runes[x] = w.grid[y][x].Rune
		}
		rows[y] = string(runes)
	}
	return rows
}
