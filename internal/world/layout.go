package world

// Map legend. Machine runes carry the equipment id that launches a
// workout when the player interacts with them.
const (
	runeWall         = '#'
	runeFloor        = '.'
	runeBench        = 'B'
	runeSquat        = 'S'
	runeTreadmill    = 'T'
	runeDumbbells    = 'D'
	runePullup       = 'U'
	runeLatPulldown  = 'L'
	runeCableMachine = 'C'
	runeShop         = '$'
	runeCoach        = 'G'
	runeMirror       = 'M'
	runeLocker       = 'K'
	runeDoor         = '+'
	runeGrass        = ','
	runeTrack        = ':'
	runeFence        = 'f'
	runeTree         = 't'
	runePoolWater    = '~'
	runePoolEdge     = 'e'
	runePoolDeck     = 'p'
	runeParkPullup   = 'u'
	runeParkBars     = 'x'
	runeParkBench    = 'o'
)

var tileDefs = map[rune]Tile{
	runeWall:         {Name: "Wall", Zone: ZoneGym},
	runeFloor:        {Name: "Floor", Walkable: true, Zone: ZoneGym},
	runeBench:        {Name: "Bench Press", Interactive: true, Equipment: "bench_press", Zone: ZoneGym},
	runeSquat:        {Name: "Squat Rack", Interactive: true, Equipment: "squat_rack", Zone: ZoneGym},
	runeTreadmill:    {Name: "Treadmill", Interactive: true, Equipment: "treadmill", Zone: ZoneGym},
	runeDumbbells:    {Name: "Dumbbells", Interactive: true, Equipment: "dumbbells", Zone: ZoneGym},
	runePullup:       {Name: "Pull-up Bar", Interactive: true, Equipment: "pullup_bar", Zone: ZoneGym},
	runeLatPulldown:  {Name: "Lat Pulldown", Interactive: true, Equipment: "lat_pulldown", Zone: ZoneGym},
	runeCableMachine: {Name: "Cable Machine", Interactive: true, Equipment: "cable_machine", Zone: ZoneGym},
	runeShop:         {Name: "Supplement Shop", Interactive: true, Zone: ZoneGym},
	runeCoach:        {Name: "Coach", Interactive: true, Zone: ZoneGym},
	runeMirror:       {Name: "Mirror", Interactive: true, Zone: ZoneGym},
	runeLocker:       {Name: "Locker", Zone: ZoneGym},
	runeDoor:         {Name: "Door", Walkable: true, Zone: ZoneGym},
	runeGrass:        {Name: "Grass", Walkable: true, Zone: ZoneOutdoor},
	runeTrack:        {Name: "Track", Walkable: true, Zone: ZoneOutdoor},
	runeFence:        {Name: "Fence", Zone: ZoneOutdoor},
	runeTree:         {Name: "Tree", Zone: ZoneOutdoor},
	runePoolWater:    {Name: "Pool", Walkable: true, Water: true, Zone: ZonePool},
	runePoolEdge:     {Name: "Pool Edge", Walkable: true, Zone: ZonePool},
	runePoolDeck:     {Name: "Pool Deck", Walkable: true, Zone: ZonePool},
	runeParkPullup:   {Name: "Outdoor Pull-up", Zone: ZoneOutdoor},
	runeParkBars:     {Name: "Parallel Bars", Zone: ZoneOutdoor},
	runeParkBench:    {Name: "Outdoor Bench", Zone: ZoneOutdoor},
}

func lookupTile(r rune) Tile {
	tile, ok := tileDefs[r]
	if !ok {
		tile = tileDefs[runeFloor]
		tile.Rune = r
		return tile
	}
	tile.Rune = r
	return tile
}

// defaultLayout is the built-in gym. Pool hall on top, main floor with
// the machines in the middle, fenced outdoor track at the bottom.
var defaultLayout = []string{
	"#########################",
	"#ppppppppppppppppppppppp#",
	"#pppeeeeeeeeeeeeeeeeeppp#",
	"#pppe~~~~~~~~~~~~~~~eppp#",
	"#pppe~~~~~~~~~~~~~~~eppp#",
	"#pppe~~~~~~~~~~~~~~~eppp#",
	"#pppe~~~~~~~~~~~~~~~eppp#",
	"#pppeeeeeeeeeeeeeeeeeppp#",
	"#ppppppppppppppppppppppp#",
	"###########...###########",
	"#.......................#",
	"#.......................#",
	"#.MMM..............KKK..#",
	"#..................KKK..#",
	"#.....B.B.B...S.S.......#",
	"#.......................#",
	"#..................U.U..#",
	"#.......................#",
	"#.......................#",
	"####........G........####",
	"#.....L.L.......C.C.....#",
	"#.DDD.............T.T.T.#",
	"#.DDD...................#",
	"#.DDD.............T.T.T.#",
	"#.......................#",
	"#.......$$..............#",
	"#.......................#",
	"############+############",
	"ffffffffffff,ffffffffffff",
	"ft,,,:::::::::::::::,,,tf",
	"f,,,::,,,,,,,,,,,,,::,,,f",
	"f,,::,,,,,,,,,,,,,,,::,,f",
	"f,::,,,,,u,,,,,u,,,,,::,f",
	"f,:,,,,,,,,,,,,,,,,,,,:,f",
	"f,:,,,,,,,,x,x,,,,,,,,:,f",
	"f,:,,,,,,,,,,,,,,,,,,,:,f",
	"f,:,,,,,,,,o,o,,,,,,,,:,f",
	"f,:,,,,,,,,,,,,,,,,,,,:,f",
	"f,::,,,,,u,,,,,u,,,,,::,f",
	"f,,::,,,,,,,,,,,,,,,::,,f",
	"f,,,::,,,,,,,,,,,,,::,,,f",
	"ft,,,:::::::::::::::,,,tf",
	"f,,,,,,,,,,,,,,,,,,,,,,,f",
	"f,,t,,,,,,,,,,,,,,,,,t,,f",
	"f,,,,,,,,,,,,,,,,,,,,,,,f",
	"fffffffffffffffffffffffff",
}

// Default returns the built-in gym map
func Default() *World {
	w, err := ParseLayout(defaultLayout)
	if err != nil {
		panic("built-in map is malformed: " + err.Error())
	}
	return w
}
