package spawners

import (
	"math/rand/v2"

	"ferris-shooter/entity"
)

// PatternTable picks an enemy movement by weight
type PatternTable struct {
	Entries []PatternTableEntry
}

// PatternTableEntry is one movement and its relative chance of being picked
type PatternTableEntry struct {
	Name     string
	Weight   int
	Movement entity.Movement
}

// NewPatternTable creates a new pattern table
func NewPatternTable(entries []PatternTableEntry) *PatternTable {
	return &PatternTable{
		Entries: entries,
	}
}

// DefaultPatternTable returns the enemy movements used by waves
func DefaultPatternTable(speed float32) *PatternTable {
	return NewPatternTable([]PatternTableEntry{
		{Name: "straight", Weight: 2, Movement: entity.Linear{VY: speed}},
		{Name: "sway", Weight: 3, Movement: Sway(speed, speed, 2000)},
		{Name: "zigzag", Weight: 2, Movement: Zigzag(speed, speed*1.5, 700)},
		{Name: "drift", Weight: 1, Movement: Drift(speed*0.75, speed/2)},
	})
}

// Pick rolls the table. An empty table yields a static movement.
func (pt *PatternTable) Pick(rng *rand.Rand) PatternTableEntry {
	totalWeight := 0
	for _, entry := range pt.Entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight == 0 {
		return PatternTableEntry{Name: "static", Movement: entity.Static{}}
	}

	roll := rng.IntN(totalWeight)
	for _, entry := range pt.Entries {
		if entry.Weight <= 0 {
			continue
		}
		if roll < entry.Weight {
			return entry
		}
		roll -= entry.Weight
	}

	return pt.Entries[len(pt.Entries)-1]
}
