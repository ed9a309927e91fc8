package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ferris-shooter/entity"
)

// Action is a control the player can hold down
type Action int

// Action constants for the input snapshot
const (
	ActionUp Action = iota
	ActionRight
	ActionDown
	ActionLeft
	ActionFire
)

// InputSystem turns held keys into an entity.Input snapshot
type InputSystem struct {
	// Map of keys to actions
	bindings map[ebiten.Key]Action
}

// NewInputSystem creates an input system with the default key bindings
func NewInputSystem() *InputSystem {
	system := &InputSystem{
		bindings: make(map[ebiten.Key]Action),
	}

	// Arrow keys
	system.bindings[ebiten.KeyArrowUp] = ActionUp
	system.bindings[ebiten.KeyArrowRight] = ActionRight
	system.bindings[ebiten.KeyArrowDown] = ActionDown
	system.bindings[ebiten.KeyArrowLeft] = ActionLeft

	// WASD
	system.bindings[ebiten.KeyW] = ActionUp
	system.bindings[ebiten.KeyD] = ActionRight
	system.bindings[ebiten.KeyS] = ActionDown
	system.bindings[ebiten.KeyA] = ActionLeft

	// Vi keys (hjkl)
	system.bindings[ebiten.KeyK] = ActionUp
	system.bindings[ebiten.KeyL] = ActionRight
	system.bindings[ebiten.KeyJ] = ActionDown
	system.bindings[ebiten.KeyH] = ActionLeft

	system.bindings[ebiten.KeySpace] = ActionFire
	system.bindings[ebiten.KeyZ] = ActionFire

	return system
}

// Bind maps a key to an action, replacing any previous binding for the key
func (s *InputSystem) Bind(key ebiten.Key, action Action) {
	s.bindings[key] = action
}

// Poll reads the keyboard for the current frame
func (s *InputSystem) Poll() entity.Input {
	var in entity.Input
	for key, action := range s.bindings {
		if !ebiten.IsKeyPressed(key) {
			continue
		}

		switch action {
		case ActionUp:
			in.Up = true
		case ActionRight:
			in.Right = true
		case ActionDown:
			in.Down = true
		case ActionLeft:
			in.Left = true
		case ActionFire:
			in.Fire = true
		}
	}
	return in
}
