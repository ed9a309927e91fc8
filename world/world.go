package world

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"ferris-shooter/entity"
)

// EventSpawned is emitted for every entity added to the world
const EventSpawned EventType = "spawned"

// SpawnEvent is emitted once a queued entity joins the world
type SpawnEvent struct {
	Entity *entity.Entity
}

// Type returns the event type
func (e SpawnEvent) Type() EventType {
	return EventSpawned
}

// Config holds the values a world is built from
type Config struct {
	Seed                  uint64 // 0 seeds from the clock
	Width, Height         float32
	EnemyBulletCooldownMS int64
	Logger                zerolog.Logger
}

// World owns every live entity and the shared state entities read while
// updating. It is not safe for concurrent use.
type World struct {
	entities []*entity.Entity
	// Entities spawned during a tick, added once the tick's passes are done
	pending []*entity.Entity
	systems []System

	eventManager *EventManager

	pcg *rand.PCG
	rng *rand.Rand
	// Shared generator state at the start of the current tick
	motion rand.PCG

	input                 entity.Input
	width, height         float32
	enemyBulletCooldownMS int64
	spawner               entity.Spawner

	ticks   uint64
	logger  zerolog.Logger
	metrics *worldMetrics
}

// New creates an empty world
func New(cfg Config) (*World, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	metrics, err := newMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to create world metrics: %w", err)
	}

	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	w := &World{
		entities:              make([]*entity.Entity, 0),
		systems:               make([]System, 0),
		eventManager:          NewEventManager(),
		pcg:                   pcg,
		rng:                   rand.New(pcg),
		width:                 cfg.Width,
		height:                cfg.Height,
		enemyBulletCooldownMS: cfg.EnemyBulletCooldownMS,
		logger:                cfg.Logger,
		metrics:               metrics,
	}
	w.motion = *pcg

	w.logger.Debug().Uint64("seed", seed).Msg("world created")
	return w, nil
}

// Tick advances the world by deltaMS. Every entity present when the tick
// starts is updated once, in insertion order, then systems run in
// registration order. Entities spawned along the way join afterwards.
func (w *World) Tick(deltaMS uint64, input entity.Input) {
	w.input = input
	w.motion = *w.pcg

	for _, e := range w.entities {
		e.Update(deltaMS, w)
	}

	for _, system := range w.systems {
		system.Update(w, deltaMS)
	}

	w.flush()

	w.ticks++
	w.metrics.ticks.Add(context.Background(), 1)
}

// flush appends queued spawns in request order
func (w *World) flush() {
	if len(w.pending) == 0 {
		return
	}

	queued := w.pending
	w.pending = nil
	for _, e := range queued {
		w.Add(e)
	}
}

// Add inserts an entity immediately. Use Spawn while a tick is running.
func (w *World) Add(e *entity.Entity) {
	if e == nil {
		return
	}
	if e.ID == 0 {
		e.ID = entity.NewID()
	}

	w.entities = append(w.entities, e)
	w.metrics.recordSpawn(e.Kind)
	w.metrics.liveCount.Store(int64(len(w.entities)))

	w.logger.Trace().Uint64("id", uint64(e.ID)).Stringer("kind", e.Kind).
		Float32("x", e.X).Float32("y", e.Y).Msg("entity spawned")
	w.EmitEvent(SpawnEvent{Entity: e})
}

// Spawn queues an entity to join the world at the end of the current tick
func (w *World) Spawn(e *entity.Entity) {
	if e == nil {
		return
	}
	w.pending = append(w.pending, e)
}

// Pending returns the number of queued spawns
func (w *World) Pending() int {
	return len(w.pending)
}

// Remove removes an entity from the world
func (w *World) Remove(id entity.ID) bool {
	removed := w.RemoveWhere(func(e *entity.Entity) bool {
		return e.ID == id
	})
	return len(removed) > 0
}

// RemoveWhere removes every entity matching pred, keeping the order of the
// rest, and returns the removed entities
func (w *World) RemoveWhere(pred func(*entity.Entity) bool) []*entity.Entity {
	var removed []*entity.Entity

	kept := w.entities[:0]
	for _, e := range w.entities {
		if pred(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept

	for _, e := range removed {
		w.metrics.recordRemove(e.Kind)
	}
	w.metrics.liveCount.Store(int64(len(w.entities)))

	return removed
}

// Entities returns a snapshot of all entities in insertion order
func (w *World) Entities() []*entity.Entity {
	entities := make([]*entity.Entity, len(w.entities))
	copy(entities, w.entities)
	return entities
}

// EntitiesOfKind returns all entities of a specific kind
func (w *World) EntitiesOfKind(kind entity.Kind) []*entity.Entity {
	entities := make([]*entity.Entity, 0)
	for _, e := range w.entities {
		if e.Kind == kind {
			entities = append(entities, e)
		}
	}
	return entities
}

// Get returns an entity by its ID
func (w *World) Get(id entity.ID) *entity.Entity {
	for _, e := range w.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Len returns the number of live entities
func (w *World) Len() int {
	return len(w.entities)
}

// Ticks returns how many ticks have run
func (w *World) Ticks() uint64 {
	return w.ticks
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// SetSpawner sets the collaborator entities use to build new entities
func (w *World) SetSpawner(s entity.Spawner) {
	w.spawner = s
}

// SetWindowSize updates the bounds the player is clamped to
func (w *World) SetWindowSize(width, height float32) {
	w.width = width
	w.height = height
}

// Rand returns the shared generator used by spawners and systems
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Input returns the input snapshot for the current tick
func (w *World) Input() entity.Input {
	return w.input
}

// MotionRand returns a generator copied from the shared state as it was when
// the current tick started. Spawns drawing seeds mid-tick do not change it,
// so procedural motion does not depend on the order entities are updated in.
func (w *World) MotionRand() *rand.Rand {
	clone := w.motion
	return rand.New(&clone)
}

// WindowSize returns the window dimensions
func (w *World) WindowSize() (float32, float32) {
	return w.width, w.height
}

// EnemyBulletCooldownMS returns the delay between enemy shots
func (w *World) EnemyBulletCooldownMS() int64 {
	return w.enemyBulletCooldownMS
}

// Spawner returns the entity spawner
func (w *World) Spawner() entity.Spawner {
	return w.spawner
}

var _ entity.Context = (*World)(nil)
