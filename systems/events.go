package systems

import (
	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// Event type constants
const (
	EventExpired   world.EventType = "expired"
	EventOffscreen world.EventType = "offscreen"
	EventFired     world.EventType = "fired"
	EventWave      world.EventType = "wave"
)

// ExpiredEvent is emitted when an entity's lifetime runs out and it is removed
type ExpiredEvent struct {
	Entity *entity.Entity
}

// Type returns the event type
func (e ExpiredEvent) Type() world.EventType {
	return EventExpired
}

// OffscreenEvent is emitted when an entity leaves the window and is removed
type OffscreenEvent struct {
	Entity *entity.Entity
}

// Type returns the event type
func (e OffscreenEvent) Type() world.EventType {
	return EventOffscreen
}

// FiredEvent is emitted when the player shoots
type FiredEvent struct {
	Shooter *entity.Entity
	Bullet  *entity.Entity
}

// Type returns the event type
func (e FiredEvent) Type() world.EventType {
	return EventFired
}

// WaveEvent is emitted when a new enemy wave starts
type WaveEvent struct {
	Wave    int
	Boss    bool // A boss joined this wave
	Powerup bool // A powerup dropped with this wave
}

// Type returns the event type
func (e WaveEvent) Type() world.EventType {
	return EventWave
}
