package spawners

import (
	"math"
	"math/rand/v2"

	"ferris-shooter/entity"
)

// Sway descends at speed while swinging side to side. The seed offsets the
// phase so a wave of enemies does not move in lockstep.
func Sway(speed, amplitude float32, periodMS float64) entity.Procedural {
	return func(elapsedMS uint64, _ *rand.Rand, seed float64) (float32, float32) {
		phase := 2*math.Pi*float64(elapsedMS)/periodMS + seed*math.Pi
		return amplitude * float32(math.Cos(phase)), speed
	}
}

// Zigzag descends at speed and flips horizontal direction every periodMS.
// Negative seeds start moving left.
func Zigzag(speed, amplitude float32, periodMS uint64) entity.Procedural {
	return func(elapsedMS uint64, _ *rand.Rand, seed float64) (float32, float32) {
		dir := float32(1)
		if seed < 0 {
			dir = -1
		}
		if periodMS > 0 && (elapsedMS/periodMS)%2 == 1 {
			dir = -dir
		}
		return dir * amplitude, speed
	}
}

// Drift falls at speed with a small random sideways jitter
func Drift(speed, jitter float32) entity.Procedural {
	return func(_ uint64, rng *rand.Rand, seed float64) (float32, float32) {
		dx := float32(seed) * jitter
		if rng != nil {
			dx += jitter * float32(rng.Float64()*2-1)
		}
		return dx, speed
	}
}

// Spiral loops in a circle once every periodMS, used by the boss
func Spiral(speed float32, periodMS float64) entity.Procedural {
	return func(elapsedMS uint64, _ *rand.Rand, seed float64) (float32, float32) {
		phase := 2*math.Pi*float64(elapsedMS)/periodMS + seed*math.Pi
		return speed * float32(math.Cos(phase)), speed * float32(math.Sin(phase))
	}
}
