package entity

import "sync/atomic"

// ID is a unique identifier for an entity
type ID uint64

var nextID uint64 = 0

// NewID generates a new unique entity ID
func NewID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}

// Rect is an offset and size relative to an entity's position
type Rect struct {
	X, Y, W, H float32
}

// Entity is one simulated game object. Kind must not change after creation.
type Entity struct {
	ID   ID
	Kind Kind

	// Glyph is the text drawn for the entity; the simulation never reads it
	Glyph string

	X, Y   float32
	Bounds Rect
	Angle  float32 // visual rotation, only player bullets spin

	HP     uint8
	Damage uint8
	Speed  float32 // player control speed in units per second

	AgeMS            uint64
	BulletCooldownMS int64
	Lifetime         Lifetime

	Movement Movement
	Seed     float64 // fixed at spawn, in [-1, 1]
}

// Translate moves the entity by dx, dy
func (e *Entity) Translate(dx, dy float32) {
	e.X += dx
	e.Y += dy
}

// Hitbox returns the entity's bounds in screen coordinates
func (e *Entity) Hitbox() Rect {
	return Rect{
		X: e.X + e.Bounds.X,
		Y: e.Y + e.Bounds.Y,
		W: e.Bounds.W,
		H: e.Bounds.H,
	}
}
