package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ferris-shooter/config"
	"ferris-shooter/entity"
	"ferris-shooter/systems"
	"ferris-shooter/world"
)

// spinFrames approximate a rotating player bullet with the debug font
var spinFrames = []string{"|", "/", "-", "\\"}

// RenderSystem handles drawing entities to the screen
type RenderSystem struct {
	messages *systems.MessageLog
	waves    *systems.WaveSystem
	paused   bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(messages *systems.MessageLog, waves *systems.WaveSystem) *RenderSystem {
	return &RenderSystem{
		messages: messages,
		waves:    waves,
	}
}

// SetPaused toggles the pause banner
func (s *RenderSystem) SetPaused(paused bool) {
	s.paused = paused
}

// Draw renders every entity, then the HUD on top
func (s *RenderSystem) Draw(w *world.World, screen *ebiten.Image) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	for _, e := range w.Entities() {
		ebitenutil.DebugPrintAt(screen, glyphFor(e), int(e.X), int(e.Y))
	}

	s.drawHUD(w, screen)
}

func glyphFor(e *entity.Entity) string {
	if e.Kind != entity.PlayerBullet {
		return e.Glyph
	}

	frame := int(e.Angle) % len(spinFrames)
	if frame < 0 {
		frame += len(spinFrames)
	}
	return spinFrames[frame]
}

// drawHUD draws the status line and the most recent messages
func (s *RenderSystem) drawHUD(w *world.World, screen *ebiten.Image) {
	wave := 0
	if s.waves != nil {
		wave = s.waves.Wave()
	}

	hp := 0
	if players := w.EntitiesOfKind(entity.Player); len(players) > 0 {
		hp = int(players[0].HP)
	}

	status := fmt.Sprintf("Wave %d  HP %d  Entities %d", wave, hp, w.Len())
	height := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, status, config.HUDMargin, height-config.GlyphHeight-config.HUDMargin)

	if s.messages != nil {
		for i, msg := range s.messages.Recent(config.HUDMessages) {
			y := height - config.GlyphHeight*(i+2) - config.HUDMargin
			ebitenutil.DebugPrintAt(screen, msg, config.HUDMargin, y)
		}
	}

	if s.paused {
		width := screen.Bounds().Dx()
		text := "PAUSED - press P to resume"
		ebitenutil.DebugPrintAt(screen, text, (width-len(text)*config.GlyphWidth)/2, height/2)
	}
}
