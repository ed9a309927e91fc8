package entity

import "math/rand/v2"

// Movement decides how far an entity drifts on its own each tick.
// The set is closed: Static, Linear and Procedural.
type Movement interface {
	// Velocity returns a displacement rate in units per second.
	// elapsedMS is the entity's age, rng is a private copy of the world
	// generator (nil unless the movement is Procedural) and seed is the
	// entity's fixed value in [-1, 1].
	Velocity(elapsedMS uint64, rng *rand.Rand, seed float64) (dx, dy float32)

	movement()
}

// Static entities never move on their own (text, effects, the player)
type Static struct{}

func (Static) Velocity(uint64, *rand.Rand, float64) (float32, float32) {
	return 0, 0
}

func (Static) movement() {}

// Linear moves at a constant velocity
type Linear struct {
	VX, VY float32
}

func (l Linear) Velocity(uint64, *rand.Rand, float64) (float32, float32) {
	return l.VX, l.VY
}

func (Linear) movement() {}

// Procedural generates a velocity from the entity's age, a random source and
// its seed. It must not keep state between calls.
type Procedural func(elapsedMS uint64, rng *rand.Rand, seed float64) (dx, dy float32)

func (p Procedural) Velocity(elapsedMS uint64, rng *rand.Rand, seed float64) (float32, float32) {
	if p == nil {
		return 0, 0
	}
	return p(elapsedMS, rng, seed)
}

func (Procedural) movement() {}
