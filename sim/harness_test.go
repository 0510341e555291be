package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
)

var testWorld = World{Width: 200, Height: 100}

// harness runs a hand-picked set of systems over a fresh store.
type harness struct {
	storage  *ecs.Storage
	sched    *ecs.Scheduler
	game     *Game
	controls *Controls
	spawner  *Spawner
}

func newHarness(t testing.TB, systems ...ecs.System) *harness {
	t.Helper()

	storage := ecs.NewStorage(NewRegistry())
	h := &harness{storage: storage}
	h.game = ecs.NewSingleton(storage, Game{}).Get()
	h.controls = ecs.NewSingleton(storage, Controls{Input: Buttons{}}).Get()
	h.spawner = ecs.NewSingleton(storage, NewSpawner(testWorld, rand.New(rand.NewPCG(1, 2)))).Get()
	ecs.NewSingleton(storage, testWorld)
	ecs.NewSingleton(storage, Speaker{Audio: silence{}})

	h.sched = ecs.NewScheduler(storage)
	for _, system := range systems {
		h.sched.Register(system)
	}
	return h
}

func (h *harness) step(dt float64) {
	h.sched.Once(dt)
}

// hazard spawns a box and moves it to at.
func (h *harness) hazard(at geom.Pos, size float64) ecs.EntityId {
	id := h.spawner.Box(h.storage)
	ecs.Get[Position](h.storage, id).Pos = at
	ecs.Get[Size](h.storage, id).Value = size
	return id
}

func count[T any](h *harness) int {
	return ecs.Count[T](h.storage)
}
