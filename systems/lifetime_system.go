package systems

import (
	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// LifetimeSystem removes entities whose lifetime has run out
type LifetimeSystem struct{}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Update removes expired entities and emits an ExpiredEvent for each
func (s *LifetimeSystem) Update(w *world.World, deltaMS uint64) {
	expired := w.RemoveWhere(func(e *entity.Entity) bool {
		return e.Lifetime.Expired()
	})

	for _, e := range expired {
		w.EmitEvent(ExpiredEvent{Entity: e})
	}
}
