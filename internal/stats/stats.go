package stats

// Name identifies a trainable stat.
type Name string

const (
	Strength  Name = "strength"
	Endurance Name = "endurance"
	Speed     Name = "speed"
)

// TrainableNames in display order
var TrainableNames = []Name{Strength, Endurance, Speed}

// Block holds the three trainable stats.
type Block struct {
	Strength  int `json:"strength"`
	Endurance int `json:"endurance"`
	Speed     int `json:"speed"`
}

// NewDefaultBlock returns a stat block with all values at 1
func NewDefaultBlock() *Block {
	return &Block{
		Strength:  1,
		Endurance: 1,
		Speed:     1,
	}
}

// NewBlock creates a stat block from individual values
func NewBlock(strength, endurance, speed int) *Block {
	return &Block{
		Strength:  strength,
		Endurance: endurance,
		Speed:     speed,
	}
}

// Get returns the value of the named stat, or 0 for an unknown name.
func (b *Block) Get(name Name) int {
	switch name {
	case Strength:
		return b.Strength
	case Endurance:
		return b.Endurance
	case Speed:
		return b.Speed
	}
	return 0
}

// Add raises the named stat by amount. Unknown names are ignored.
func (b *Block) Add(name Name, amount int) {
	switch name {
	case Strength:
		b.Strength += amount
	case Endurance:
		b.Endurance += amount
	case Speed:
		b.Speed += amount
	}
}

// ParseName converts a string to a stat Name.
func ParseName(s string) (Name, bool) {
	switch Name(s) {
	case Strength:
		return Strength, true
	case Endurance:
		return Endurance, true
	case Speed:
		return Speed, true
	}
	return "", false
}
