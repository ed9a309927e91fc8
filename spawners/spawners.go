package spawners

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"ferris-shooter/config"
	"ferris-shooter/entity"
)

// Glyphs drawn for each kind
const (
	GlyphPlayer       = "A"
	GlyphEnemy        = "V"
	GlyphBoss         = "<W>"
	GlyphEnemyBullet  = "o"
	GlyphPlayerBullet = "*"
	GlyphPowerup      = "+"
)

// Boss and powerup stats that are not worth a config key
const (
	bossHP            = 40
	bossSpeed         = 60
	bossPeriodMS      = 6000
	bossLifetimeMS    = 18000
	powerupSpeed      = 40
	powerupLifetimeMS = 10000
)

// EntitySpawner manages the creation of game entities. It only builds
// entities; adding them to the world is the caller's job.
type EntitySpawner struct {
	rng      *rand.Rand
	settings config.Settings
	patterns *PatternTable
	logger   zerolog.Logger
}

// NewEntitySpawner creates a new entity spawner drawing seeds from rng
func NewEntitySpawner(rng *rand.Rand, settings config.Settings, logger zerolog.Logger) *EntitySpawner {
	return &EntitySpawner{
		rng:      rng,
		settings: settings,
		patterns: DefaultPatternTable(settings.Enemy.Speed),
		logger:   logger,
	}
}

// seed returns a fresh per-entity seed in [-1, 1)
func (s *EntitySpawner) seed() float64 {
	return s.rng.Float64()*2 - 1
}

func (s *EntitySpawner) newEntity(kind entity.Kind, glyph string, x, y float32) *entity.Entity {
	return &entity.Entity{
		ID:       entity.NewID(),
		Kind:     kind,
		Glyph:    glyph,
		X:        x,
		Y:        y,
		Bounds:   glyphBounds(glyph),
		Movement: entity.Static{},
		Lifetime: entity.Forever(),
		Seed:     s.seed(),
	}
}

// glyphBounds covers the text a glyph is drawn with
func glyphBounds(glyph string) entity.Rect {
	return entity.Rect{
		W: float32(len(glyph) * config.GlyphWidth),
		H: config.GlyphHeight,
	}
}

// CreatePlayer creates the player ship at the given position
func (s *EntitySpawner) CreatePlayer(x, y float32) *entity.Entity {
	e := s.newEntity(entity.Player, GlyphPlayer, x, y)
	e.HP = s.settings.Player.HP
	e.Damage = 1
	e.Speed = s.settings.Player.Speed

	s.logger.Debug().Float32("x", x).Float32("y", y).Msg("player created")
	return e
}

// CreateEnemy creates an enemy with a movement picked from the pattern table.
// The first shot is delayed by a random part of the cooldown so a wave does
// not fire in unison.
func (s *EntitySpawner) CreateEnemy(x, y float32) *entity.Entity {
	e := s.newEntity(entity.Enemy, GlyphEnemy, x, y)
	e.HP = s.settings.Enemy.HP
	e.Damage = 1

	pattern := s.patterns.Pick(s.rng)
	e.Movement = pattern.Movement
	if cd := s.settings.Enemy.BulletCooldownMS; cd > 0 {
		e.BulletCooldownMS = s.rng.Int64N(cd)
	}

	s.logger.Debug().Str("pattern", pattern.Name).Float32("x", x).Float32("y", y).Msg("enemy created")
	return e
}

// CreateBoss creates a boss circling around its spawn point
func (s *EntitySpawner) CreateBoss(x, y float32) *entity.Entity {
	e := s.newEntity(entity.Boss, GlyphBoss, x, y)
	e.HP = bossHP
	e.Damage = 2
	e.Movement = Spiral(bossSpeed, bossPeriodMS)
	e.Lifetime = entity.Remaining(bossLifetimeMS)

	s.logger.Debug().Float32("x", x).Float32("y", y).Msg("boss created")
	return e
}

// SpawnEnemyBullet creates a bullet falling from the given origin
func (s *EntitySpawner) SpawnEnemyBullet(x, y float32) *entity.Entity {
	e := s.newEntity(entity.EnemyBullet, GlyphEnemyBullet, x, y)
	e.HP = 1
	e.Damage = 1
	e.Movement = entity.Linear{VY: s.settings.Bullet.EnemySpeed}
	e.Lifetime = entity.Remaining(s.settings.Bullet.LifetimeMS)
	return e
}

// CreatePlayerBullet creates a bullet rising from the given origin
func (s *EntitySpawner) CreatePlayerBullet(x, y float32) *entity.Entity {
	e := s.newEntity(entity.PlayerBullet, GlyphPlayerBullet, x, y)
	e.HP = 1
	e.Damage = 1
	e.Movement = entity.Linear{VY: -s.settings.Bullet.PlayerSpeed}
	e.Lifetime = entity.Remaining(s.settings.Bullet.LifetimeMS)
	return e
}

// CreatePowerup creates a powerup drifting down the screen
func (s *EntitySpawner) CreatePowerup(x, y float32) *entity.Entity {
	e := s.newEntity(entity.Powerup, GlyphPowerup, x, y)
	e.HP = 1
	e.Movement = Drift(powerupSpeed, powerupSpeed/2)
	e.Lifetime = entity.Remaining(powerupLifetimeMS)

	s.logger.Debug().Float32("x", x).Float32("y", y).Msg("powerup created")
	return e
}

var _ entity.Spawner = (*EntitySpawner)(nil)
