package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"ferris-shooter/config"
	"ferris-shooter/logging"
	"ferris-shooter/spawners"
	"ferris-shooter/systems"
	"ferris-shooter/ui"
	"ferris-shooter/world"
)

// offscreenMargin must exceed the height enemies spawn above the window
const offscreenMargin = 4 * config.GlyphHeight

const messageHistory = 32

// Game implements ebiten.Game interface.
type Game struct {
	world         *world.World
	clock         *world.FrameClock
	entitySpawner *spawners.EntitySpawner
	waveSystem    *systems.WaveSystem
	inputSystem   *ui.InputSystem
	renderSystem  *ui.RenderSystem
	audioSystem   *ui.AudioSystem
	messages      *systems.MessageLog
	settings      config.Settings
	paused        bool
	logger        zerolog.Logger
}

// NewGame creates a new game instance
func NewGame(settings config.Settings) (*Game, error) {
	w, err := world.New(world.Config{
		Seed:                  settings.Seed,
		Width:                 float32(settings.Window.Width),
		Height:                float32(settings.Window.Height),
		EnemyBulletCooldownMS: settings.Enemy.BulletCooldownMS,
		Logger:                logging.Component("world"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	entitySpawner := spawners.NewEntitySpawner(w.Rand(), settings, logging.Component("spawner"))
	w.SetSpawner(entitySpawner)

	waveSystem := systems.NewWaveSystem(entitySpawner, settings.Enemy, logging.Component("waves"))

	// Order matters: firing reads the cooldown the entity pass just decremented,
	// and removal sweeps see the positions after this tick's movement
	w.AddSystem(systems.NewWeaponSystem(entitySpawner, settings.Player.BulletCooldownMS))
	w.AddSystem(waveSystem)
	w.AddSystem(systems.NewLifetimeSystem())
	w.AddSystem(systems.NewOffscreenSystem(offscreenMargin))

	messages := systems.NewMessageLog(messageHistory)
	messages.Subscribe(w)

	audioSystem := ui.NewAudioSystem(settings.DisableSFX, settings.SFXVolume, logging.Component("audio"))
	audioSystem.Subscribe(w)

	game := &Game{
		world:         w,
		clock:         world.NewFrameClock(settings.MaxFrameMS, nil),
		entitySpawner: entitySpawner,
		waveSystem:    waveSystem,
		inputSystem:   ui.NewInputSystem(),
		renderSystem:  ui.NewRenderSystem(messages, waveSystem),
		audioSystem:   audioSystem,
		messages:      messages,
		settings:      settings,
		logger:        logging.Component("game"),
	}

	game.initialize()
	return game, nil
}

// initialize places the player and greets them
func (g *Game) initialize() {
	width, height := g.world.WindowSize()
	player := g.entitySpawner.CreatePlayer(width/2, height-config.GlyphHeight*3)
	g.world.Add(player)

	g.messages.Add("Arrow keys or WASD to move, Space to fire.")
	g.messages.Add("P pauses, Escape quits.")

	g.logger.Info().Int("width", int(width)).Int("height", int(height)).Msg("game started")
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info().Uint64("ticks", g.world.Ticks()).Int("wave", g.waveSystem.Wave()).Msg("quitting")
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.renderSystem.SetPaused(g.paused)
		g.clock.Reset()
	}
	if g.paused {
		return nil
	}

	g.world.Tick(g.clock.Delta(), g.inputSystem.Poll())
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	// Print FPS for debugging
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
