package leveling

// Progression constants
const (
	MaxPlayerLevel = 50
)

// xpPerLevel maps a level to the XP required to advance from the previous
// level. Levels past the table grow by half again per level.
var xpPerLevel = map[int]int{
	2:  100,
	3:  250,
	4:  450,
	5:  700,
	6:  1000,
	7:  1400,
	8:  1900,
	9:  2500,
	10: 3200,
}

// muscleTiers lists the minimum total strength for each physique tier,
// indexed by tier-1.
var muscleTiers = []struct {
	Strength int
	Name     string
}{
	{0, "Skinny"},
	{5, "Slim"},
	{12, "Average"},
	{22, "Fit"},
	{35, "Athletic"},
	{50, "Muscular"},
	{70, "Jacked"},
}

// XPToNextLevel returns the XP needed to advance from currentLevel to the
// next level. Returns 0 at or above the level cap.
func XPToNextLevel(currentLevel int) int {
	if currentLevel >= MaxPlayerLevel {
		return 0
	}
	if need, ok := xpPerLevel[currentLevel+1]; ok {
		return need
	}
	// Past the table the requirement compounds at 1.5x, truncated each
	// step to keep the curve integral.
	need := xpPerLevel[10]
	for level := 10; level <= currentLevel; level++ {
		need = need * 3 / 2
	}
	return need
}

// MuscleTier returns the physique tier (1-7) for a total strength value.
func MuscleTier(strength int) int {
	tier := 1
	for i, t := range muscleTiers {
		if strength >= t.Strength {
			tier = i + 1
		}
	}
	return tier
}

// MuscleTierName returns the display name for a physique tier.
func MuscleTierName(tier int) string {
	if tier < 1 {
		tier = 1
	}
	if tier > len(muscleTiers) {
		tier = len(muscleTiers)
	}
	return muscleTiers[tier-1].Name
}

// MaxTier returns the highest physique tier.
func MaxTier() int {
	return len(muscleTiers)
}
