package systems

import (
	"github.com/rs/zerolog"

	"ferris-shooter/config"
	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// WaveSpawner builds the entities a wave brings in
type WaveSpawner interface {
	CreateEnemy(x, y float32) *entity.Entity
	CreateBoss(x, y float32) *entity.Entity
	CreatePowerup(x, y float32) *entity.Entity
}

// WaveSystem brings in a new enemy every interval. Every BossEvery waves a
// boss joins if none is alive, and every PowerupEvery waves a powerup drops.
type WaveSystem struct {
	spawner      WaveSpawner
	intervalMS   int64
	bossEvery    int
	powerupEvery int
	logger       zerolog.Logger

	elapsedMS  int64
	wave       int
	bossQueued bool // a boss was spawned earlier in this update and is not in the world yet
}

// NewWaveSystem creates a new wave system from the enemy settings
func NewWaveSystem(spawner WaveSpawner, cfg config.EnemyConfig, logger zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		spawner:      spawner,
		intervalMS:   cfg.SpawnIntervalMS,
		bossEvery:    cfg.BossEvery,
		powerupEvery: cfg.PowerupEvery,
		logger:       logger,
	}
}

// Wave returns the number of waves started so far
func (s *WaveSystem) Wave() int {
	return s.wave
}

// Update accumulates time and starts as many waves as have come due
func (s *WaveSystem) Update(w *world.World, deltaMS uint64) {
	if s.intervalMS <= 0 {
		return
	}

	s.bossQueued = false
	s.elapsedMS += int64(deltaMS)
	for s.elapsedMS >= s.intervalMS {
		s.elapsedMS -= s.intervalMS
		s.startWave(w)
	}
}

func (s *WaveSystem) startWave(w *world.World) {
	s.wave++
	width, _ := w.WindowSize()
	rng := w.Rand()

	x := rng.Float32() * max(width-config.GlyphWidth, 0)
	w.Spawn(s.spawner.CreateEnemy(x, -config.GlyphHeight))

	event := WaveEvent{Wave: s.wave}

	if s.bossEvery > 0 && s.wave%s.bossEvery == 0 && !s.bossQueued && len(w.EntitiesOfKind(entity.Boss)) == 0 {
		w.Spawn(s.spawner.CreateBoss(width/2, config.GlyphHeight*4))
		s.bossQueued = true
		event.Boss = true
	}

	if s.powerupEvery > 0 && s.wave%s.powerupEvery == 0 {
		px := rng.Float32() * max(width-config.GlyphWidth, 0)
		w.Spawn(s.spawner.CreatePowerup(px, -config.GlyphHeight))
		event.Powerup = true
	}

	s.logger.Debug().Int("wave", s.wave).Bool("boss", event.Boss).Bool("powerup", event.Powerup).Msg("wave started")
	w.EmitEvent(event)
}
