package entity

import "math/rand/v2"

// diagonal scales each axis so diagonal movement keeps the cardinal speed
const diagonal = 0.70710678

// Direction bits for the player's input mask
const (
	dirUp = 1 << iota
	dirRight
	dirDown
	dirLeft
)

// Update advances the entity by deltaMS milliseconds. The steps run in a fixed
// order: timers, cooldown, movement, then the behavior for the entity's kind.
func (e *Entity) Update(deltaMS uint64, ctx Context) {
	e.AgeMS += deltaMS
	e.Lifetime = e.Lifetime.sub(deltaMS)

	e.BulletCooldownMS -= int64(deltaMS)
	if e.BulletCooldownMS < 0 {
		e.BulletCooldownMS = 0
	}

	dt := float32(deltaMS) / 1000
	e.move(dt, ctx)

	switch e.Kind {
	case Player:
		e.steer(dt, ctx.Input())
		e.clamp(ctx.WindowSize())

	case Enemy:
		if e.BulletCooldownMS <= 0 {
			e.BulletCooldownMS = ctx.EnemyBulletCooldownMS()
			if spawner := ctx.Spawner(); spawner != nil {
				if bullet := spawner.SpawnEnemyBullet(e.X, e.Y); bullet != nil {
					ctx.Spawn(bullet)
				}
			}
		}

	case PlayerBullet:
		e.Angle += float32(deltaMS) / 100

	case Boss, EnemyBullet, Powerup:
	}
}

func (e *Entity) move(dt float32, ctx Context) {
	if e.Movement == nil {
		return
	}

	var rng *rand.Rand
	if _, ok := e.Movement.(Procedural); ok {
		rng = ctx.MotionRand()
	}

	dx, dy := e.Movement.Velocity(e.AgeMS, rng, e.Seed)
	e.Translate(dx*dt, dy*dt)
}

// steer applies eight-way player movement. Opposite keys cancel into no movement.
func (e *Entity) steer(dt float32, in Input) {
	v := e.Speed * dt
	d := v * diagonal

	mask := 0
	if in.Up {
		mask |= dirUp
	}
	if in.Right {
		mask |= dirRight
	}
	if in.Down {
		mask |= dirDown
	}
	if in.Left {
		mask |= dirLeft
	}

	switch mask {
	case dirUp:
		e.Translate(0, -v)
	case dirUp | dirRight:
		e.Translate(d, -d)
	case dirRight:
		e.Translate(v, 0)
	case dirRight | dirDown:
		e.Translate(d, d)
	case dirDown:
		e.Translate(0, v)
	case dirDown | dirLeft:
		e.Translate(-d, d)
	case dirLeft:
		e.Translate(-v, 0)
	case dirLeft | dirUp:
		e.Translate(-d, -d)
	}
}

// clamp keeps the bounds inside the window. Each axis checks the near edge
// first, so a window narrower than the bounds leaves the far edge aligned.
func (e *Entity) clamp(width, height float32) {
	if e.X+e.Bounds.X < 0 {
		e.X = -e.Bounds.X
	}
	if e.X+e.Bounds.X+e.Bounds.W > width {
		e.X = width - (e.Bounds.X + e.Bounds.W)
	}
	if e.Y+e.Bounds.Y < 0 {
		e.Y = -e.Bounds.Y
	}
	if e.Y+e.Bounds.Y+e.Bounds.H > height {
		e.Y = height - (e.Bounds.Y + e.Bounds.H)
	}
}
