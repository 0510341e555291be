package sim

import (
	"math"
	"testing"

	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boid(h *harness, at geom.Pos, velocity, angle float64) ecs.EntityId {
	return h.storage.Spawn(Flocking{}, Position{at}, Velocity{velocity}, Angle{angle})
}

func TestFlockingWithoutNeighbours(t *testing.T) {
	h := newHarness(t, &FlockingSystem{})
	a := boid(h, geom.Pos{X: 10, Y: 10}, 2, 0.5)
	b := boid(h, geom.Pos{X: 110, Y: 10}, 3, 1.5)

	h.step(0.1)

	assert.Equal(t, 2.0, ecs.Get[Velocity](h.storage, a).Value)
	assert.Equal(t, 0.5, ecs.Get[Angle](h.storage, a).Radians)
	assert.Equal(t, 3.0, ecs.Get[Velocity](h.storage, b).Value)
	assert.Equal(t, 1.5, ecs.Get[Angle](h.storage, b).Radians)
	assert.False(t, ecs.Has[TargetDirection](h.storage, a))
	assert.False(t, ecs.Has[TargetDirection](h.storage, b))
}

func TestFlockingCohesion(t *testing.T) {
	h := newHarness(t, &FlockingSystem{})
	a := boid(h, geom.Pos{X: 50, Y: 50}, 0, 0)
	b := boid(h, geom.Pos{X: 100, Y: 50}, 0, 0)

	h.step(0.1)

	ta, ok := ecs.TryGet[TargetDirection](h.storage, a)
	require.True(t, ok)
	tb, ok := ecs.TryGet[TargetDirection](h.storage, b)
	require.True(t, ok)

	assert.InDelta(t, 1, math.Cos(ta.Radians), 1e-9, "a steers towards b")
	assert.InDelta(t, -1, math.Cos(tb.Radians), 1e-9, "b steers towards a")

	// Heading is left to the steering system.
	assert.Equal(t, 0.0, ecs.Get[Angle](h.storage, a).Radians)
	assert.Equal(t, 0.0, ecs.Get[Angle](h.storage, b).Radians)
	assert.Greater(t, ecs.Get[Velocity](h.storage, a).Value, 0.0)
}

func TestFlockingSeparation(t *testing.T) {
	h := newHarness(t, &FlockingSystem{})
	a := boid(h, geom.Pos{X: 50, Y: 50}, 0, 0)
	b := boid(h, geom.Pos{X: 60, Y: 50}, 0, 0)

	h.step(0.1)

	assert.InDelta(t, -1, math.Cos(ecs.Get[TargetDirection](h.storage, a).Radians), 1e-9, "a moves away from b")
	assert.InDelta(t, 1, math.Cos(ecs.Get[TargetDirection](h.storage, b).Radians), 1e-9, "b moves away from a")
}

func TestFlockingIgnoresOtherEntities(t *testing.T) {
	h := newHarness(t, &FlockingSystem{})
	a := boid(h, geom.Pos{X: 50, Y: 50}, 1, 0)
	h.storage.Spawn(Position{geom.Pos{X: 55, Y: 50}}, Velocity{1}, Angle{0})

	h.step(0.1)

	assert.False(t, ecs.Has[TargetDirection](h.storage, a))
	assert.Equal(t, 1.0, ecs.Get[Velocity](h.storage, a).Value)
}

func BenchmarkFlocking(b *testing.B) {
	h := newHarness(b, &FlockingSystem{})
	h.spawner.Boxes(h.storage, 100)

	for b.Loop() {
		h.step(1.0 / 60)
	}
}
