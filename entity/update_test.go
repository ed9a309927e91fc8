package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpawner struct {
	calls [][2]float32
}

func (s *fakeSpawner) SpawnEnemyBullet(x, y float32) *Entity {
	s.calls = append(s.calls, [2]float32{x, y})
	return &Entity{ID: NewID(), Kind: EnemyBullet, X: x, Y: y, Lifetime: Remaining(1000)}
}

type fakeContext struct {
	input    Input
	width    float32
	height   float32
	cooldown int64
	seed     uint64
	spawner  *fakeSpawner
	spawned  []*Entity
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		width:    800,
		height:   600,
		cooldown: 1500,
		seed:     7,
		spawner:  &fakeSpawner{},
	}
}

func (c *fakeContext) Input() Input { return c.input }
func (c *fakeContext) MotionRand() *rand.Rand { return rand.New(rand.NewPCG(c.seed, c.seed)) }
func (c *fakeContext) WindowSize() (float32, float32) { return c.width, c.height }
func (c *fakeContext) EnemyBulletCooldownMS() int64 { return c.cooldown }
func (c *fakeContext) Spawner() Spawner { return c.spawner }
func (c *fakeContext) Spawn(e *Entity) { c.spawned = append(c.spawned, e) }

func TestUpdate_StaticDoesNotMove(t *testing.T) {
	for _, delta := range []uint64{0, 1, 16, 1000, 123456} {
		e := &Entity{Kind: Boss, X: 10, Y: 20, Movement: Static{}}
		e.Update(delta, newFakeContext())
		assert.Equal(t, float32(10), e.X)
		assert.Equal(t, float32(20), e.Y)
	}
}

func TestUpdate_NilMovementDoesNotMove(t *testing.T) {
	e := &Entity{Kind: Powerup, X: 3, Y: 4}
	e.Update(500, newFakeContext())
	assert.Equal(t, float32(3), e.X)
	assert.Equal(t, float32(4), e.Y)
}

func TestUpdate_LinearMovement(t *testing.T) {
	tests := []struct {
		name   string
		vx, vy float32
		delta  uint64
	}{
		{"one second", 100, -50, 1000},
		{"one frame", 240, 120, 16},
		{"zero delta", 300, 300, 0},
		{"negative velocity", -80, -20, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{Kind: EnemyBullet, X: 50, Y: 50, Movement: Linear{VX: tt.vx, VY: tt.vy}}
			e.Update(tt.delta, newFakeContext())

			secs := float64(tt.delta) / 1000
			assert.InDelta(t, 50+float64(tt.vx)*secs, float64(e.X), 1e-3)
			assert.InDelta(t, 50+float64(tt.vy)*secs, float64(e.Y), 1e-3)
		})
	}
}

func TestUpdate_ProceduralReceivesAgeAndSeed(t *testing.T) {
	var gotAge uint64
	var gotSeed float64
	var gotRng *rand.Rand

	e := &Entity{
		Kind:  Enemy,
		AgeMS: 400,
		Seed:  -0.25,
		Movement: Procedural(func(elapsedMS uint64, rng *rand.Rand, seed float64) (float32, float32) {
			gotAge, gotRng, gotSeed = elapsedMS, rng, seed
			return 10, 20
		}),
		BulletCooldownMS: 10000,
	}
	e.Update(100, newFakeContext())

	assert.Equal(t, uint64(500), gotAge)
	assert.Equal(t, -0.25, gotSeed)
	require.NotNil(t, gotRng)
	assert.InDelta(t, 1.0, float64(e.X), 1e-5)
	assert.InDelta(t, 2.0, float64(e.Y), 1e-5)
}

func TestUpdate_AgeAccumulates(t *testing.T) {
	e := &Entity{Kind: Powerup}
	ctx := newFakeContext()
	var last uint64
	for _, delta := range []uint64{16, 0, 17, 1000} {
		e.Update(delta, ctx)
		assert.GreaterOrEqual(t, e.AgeMS, last)
		last = e.AgeMS
	}
	assert.Equal(t, uint64(1033), e.AgeMS)
}

func TestUpdate_LifetimeCountsDownPastZero(t *testing.T) {
	e := &Entity{Kind: EnemyBullet, Lifetime: Remaining(100)}
	e.Update(250, newFakeContext())

	remaining, limited := e.Lifetime.Remaining()
	assert.True(t, limited)
	assert.Equal(t, int64(-150), remaining)
	assert.True(t, e.Lifetime.Expired())
}

func TestUpdate_ForeverLifetimeUnchanged(t *testing.T) {
	e := &Entity{Kind: Boss, Lifetime: Forever()}
	e.Update(5000, newFakeContext())
	assert.True(t, e.Lifetime.IsForever())
	assert.False(t, e.Lifetime.Expired())
}

func TestUpdate_CooldownNeverNegative(t *testing.T) {
	kinds := []Kind{Boss, EnemyBullet, PlayerBullet, Player, Powerup}
	for _, kind := range kinds {
		for _, start := range []int64{-500, 0, 1, 100, 10000} {
			for _, delta := range []uint64{0, 1, 99, 100, 20000} {
				e := &Entity{Kind: kind, BulletCooldownMS: start, Bounds: Rect{W: 10, H: 10}}
				e.Update(delta, newFakeContext())
				assert.GreaterOrEqual(t, e.BulletCooldownMS, int64(0), "kind=%s start=%d delta=%d", kind, start, delta)
			}
		}
	}
}

func TestUpdate_PlayerDiagonal(t *testing.T) {
	ctx := newFakeContext()
	ctx.input = Input{Up: true, Right: true}

	e := &Entity{Kind: Player, X: 400, Y: 300, Speed: 100}
	e.Update(1000, ctx)

	assert.InDelta(t, 70.7107, float64(e.X-400), 1e-3)
	assert.InDelta(t, -70.7107, float64(e.Y-300), 1e-3)
}

func TestUpdate_PlayerDirections(t *testing.T) {
	const d = 70.710678
	tests := []struct {
		name   string
		input  Input
		dx, dy float64
	}{
		{"none", Input{}, 0, 0},
		{"up", Input{Up: true}, 0, -100},
		{"right", Input{Right: true}, 100, 0},
		{"down", Input{Down: true}, 0, 100},
		{"left", Input{Left: true}, -100, 0},
		{"up right", Input{Up: true, Right: true}, d, -d},
		{"right down", Input{Right: true, Down: true}, d, d},
		{"down left", Input{Down: true, Left: true}, -d, d},
		{"left up", Input{Left: true, Up: true}, -d, -d},
		{"up down", Input{Up: true, Down: true}, 0, 0},
		{"left right", Input{Left: true, Right: true}, 0, 0},
		{"three keys", Input{Up: true, Right: true, Down: true}, 0, 0},
		{"all keys", Input{Up: true, Right: true, Down: true, Left: true}, 0, 0},
		{"fire only", Input{Fire: true}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			ctx.input = tt.input

			e := &Entity{Kind: Player, X: 400, Y: 300, Speed: 100}
			e.Update(1000, ctx)

			assert.InDelta(t, tt.dx, float64(e.X-400), 1e-3)
			assert.InDelta(t, tt.dy, float64(e.Y-300), 1e-3)
		})
	}
}

func TestUpdate_PlayerNoInputIgnoresSpeed(t *testing.T) {
	for _, speed := range []float32{0, 1, 250, 1e6} {
		e := &Entity{Kind: Player, X: 100, Y: 100, Speed: speed, Bounds: Rect{W: 10, H: 10}}
		e.Update(1000, newFakeContext())
		assert.Equal(t, float32(100), e.X)
		assert.Equal(t, float32(100), e.Y)
	}
}

func TestUpdate_PlayerClampedToWindow(t *testing.T) {
	bounds := Rect{X: -8, Y: -8, W: 16, H: 16}
	starts := [][2]float32{
		{-500, -500}, {0, 0}, {400, 300}, {799, 599}, {5000, 5000}, {-20, 700}, {900, -3},
	}

	for _, start := range starts {
		ctx := newFakeContext()
		ctx.input = Input{Right: true, Down: true}
		e := &Entity{Kind: Player, X: start[0], Y: start[1], Speed: 300, Bounds: bounds}
		e.Update(16, ctx)

		box := e.Hitbox()
		assert.GreaterOrEqual(t, box.X, float32(0))
		assert.GreaterOrEqual(t, box.Y, float32(0))
		assert.LessOrEqual(t, box.X+box.W, ctx.width)
		assert.LessOrEqual(t, box.Y+box.H, ctx.height)
	}
}

func TestUpdate_PlayerClampFarEdgeWinsOnTinyWindow(t *testing.T) {
	ctx := newFakeContext()
	ctx.width, ctx.height = 10, 10

	e := &Entity{Kind: Player, X: -50, Y: -50, Bounds: Rect{W: 20, H: 30}}
	e.Update(0, ctx)

	assert.Equal(t, float32(-10), e.X)
	assert.Equal(t, float32(-20), e.Y)
}

func TestUpdate_NonPlayerNotClamped(t *testing.T) {
	e := &Entity{Kind: EnemyBullet, X: -100, Y: 5000, Bounds: Rect{W: 4, H: 4}}
	e.Update(16, newFakeContext())
	assert.Equal(t, float32(-100), e.X)
	assert.Equal(t, float32(5000), e.Y)
}

func TestUpdate_EnemyFiresWhenReady(t *testing.T) {
	ctx := newFakeContext()
	e := &Entity{Kind: Enemy, X: 120, Y: 40}

	e.Update(16, ctx)

	require.Len(t, ctx.spawned, 1)
	assert.Equal(t, EnemyBullet, ctx.spawned[0].Kind)
	assert.Equal(t, [][2]float32{{120, 40}}, ctx.spawner.calls)
	assert.Equal(t, int64(1500), e.BulletCooldownMS)
}

func TestUpdate_EnemyFiresFromMovedPosition(t *testing.T) {
	ctx := newFakeContext()
	e := &Entity{Kind: Enemy, X: 0, Y: 0, Movement: Linear{VX: 100, VY: 50}}

	e.Update(1000, ctx)

	require.Len(t, ctx.spawner.calls, 1)
	assert.InDelta(t, 100.0, float64(ctx.spawner.calls[0][0]), 1e-4)
	assert.InDelta(t, 50.0, float64(ctx.spawner.calls[0][1]), 1e-4)
}

func TestUpdate_EnemyWaitsForCooldown(t *testing.T) {
	ctx := newFakeContext()
	e := &Entity{Kind: Enemy, BulletCooldownMS: 500}

	e.Update(200, ctx)

	assert.Empty(t, ctx.spawned)
	assert.Equal(t, int64(300), e.BulletCooldownMS)
}

func TestUpdate_EnemyFiresOncePerCall(t *testing.T) {
	ctx := newFakeContext()
	ctx.cooldown = 0
	e := &Entity{Kind: Enemy}

	e.Update(10000, ctx)
	assert.Len(t, ctx.spawned, 1)

	e.Update(10000, ctx)
	assert.Len(t, ctx.spawned, 2)
}

func TestUpdate_PlayerBulletSpins(t *testing.T) {
	ctx := newFakeContext()
	e := &Entity{Kind: PlayerBullet, X: 10, Y: 10, Angle: 1, HP: 1, Damage: 3, Speed: 9, Seed: 0.5}

	e.Update(250, ctx)

	assert.InDelta(t, 3.5, float64(e.Angle), 1e-6)
	assert.Equal(t, uint8(1), e.HP)
	assert.Equal(t, uint8(3), e.Damage)
	assert.Equal(t, float32(9), e.Speed)
	assert.Equal(t, 0.5, e.Seed)
	assert.Equal(t, PlayerBullet, e.Kind)
	assert.Empty(t, ctx.spawned)
}

func TestUpdate_OtherKindsDoNotSpin(t *testing.T) {
	for _, kind := range []Kind{Boss, EnemyBullet, Powerup, Player} {
		e := &Entity{Kind: kind, Angle: 2, Bounds: Rect{W: 1, H: 1}}
		e.Update(1000, newFakeContext())
		assert.Equal(t, float32(2), e.Angle, kind.String())
	}
}
