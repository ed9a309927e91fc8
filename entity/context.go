package entity

import "math/rand/v2"

// Input is a snapshot of the directional and fire controls for one tick
type Input struct {
	Up    bool
	Right bool
	Down  bool
	Left  bool
	Fire  bool
}

// Spawner constructs fully initialized entities on request
type Spawner interface {
	SpawnEnemyBullet(x, y float32) *Entity
}

// Context is the shared world state visible to an entity while it updates.
// Spawn must only queue the entity; it is added after the current pass.
type Context interface {
	Input() Input
	// MotionRand returns a copy of the world generator for procedural motion
	MotionRand() *rand.Rand
	WindowSize() (width, height float32)
	EnemyBulletCooldownMS() int64
	Spawner() Spawner
	Spawn(e *Entity)
}
