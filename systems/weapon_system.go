package systems

import (
	"ferris-shooter/config"
	"ferris-shooter/entity"
	"ferris-shooter/world"
)

// BulletSpawner builds player bullets
type BulletSpawner interface {
	CreatePlayerBullet(x, y float32) *entity.Entity
}

// WeaponSystem fires the player's gun while the fire key is held
type WeaponSystem struct {
	spawner    BulletSpawner
	cooldownMS int64
}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem(spawner BulletSpawner, cooldownMS int64) *WeaponSystem {
	return &WeaponSystem{
		spawner:    spawner,
		cooldownMS: cooldownMS,
	}
}

// Update spawns a bullet above each player whose cooldown has elapsed
func (s *WeaponSystem) Update(w *world.World, deltaMS uint64) {
	if !w.Input().Fire {
		return
	}

	for _, player := range w.EntitiesOfKind(entity.Player) {
		if player.BulletCooldownMS > 0 {
			continue
		}

		bullet := s.spawner.CreatePlayerBullet(player.X, player.Y-config.GlyphHeight)
		if bullet == nil {
			continue
		}

		player.BulletCooldownMS = s.cooldownMS
		w.Spawn(bullet)
		w.EmitEvent(FiredEvent{Shooter: player, Bullet: bullet})
	}
}
