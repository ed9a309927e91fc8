package systems

import (
	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// OffscreenSystem removes entities that have left the window. Enemies spawn
// just above the top edge, so the margin must be larger than a glyph.
type OffscreenSystem struct {
	Margin float32
}

// NewOffscreenSystem creates a new offscreen system
func NewOffscreenSystem(margin float32) *OffscreenSystem {
	return &OffscreenSystem{Margin: margin}
}

// Update removes bullets, enemies and powerups fully outside the window
func (s *OffscreenSystem) Update(w *world.World, deltaMS uint64) {
	width, height := w.WindowSize()

	gone := w.RemoveWhere(func(e *entity.Entity) bool {
		switch e.Kind {
		case entity.Player, entity.Boss:
			return false
		}

		box := e.Hitbox()
		return box.X+box.W < -s.Margin ||
			box.Y+box.H < -s.Margin ||
			box.X > width+s.Margin ||
			box.Y > height+s.Margin
	})

	for _, e := range gone {
		w.EmitEvent(OffscreenEvent{Entity: e})
	}
}
