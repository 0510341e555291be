package ecs_test

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/plus3/squarez/ecs"
)

type Heading struct {
	Radians float64
}

type Speed struct {
	Value float64
}

type Point struct {
	X, Y float64
}

type DriftSystem struct {
	Entities ecs.Query[struct {
		*Point
		*Heading
		*Speed
	}]
}

func (s *DriftSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.Point.X += math.Cos(entity.Heading.Radians) * entity.Speed.Value
		entity.Point.Y += math.Sin(entity.Heading.Radians) * entity.Speed.Value
	}
}

type DragSystem struct {
	Entities ecs.Query[struct{ *Speed }]
	Factor   float64
}

func (s *DragSystem) Execute(frame *ecs.UpdateFrame) {
	for entity := range s.Entities.Iter() {
		entity.Speed.Value *= s.Factor
	}
}

// ExampleScheduler demonstrates a fixed per-frame pipeline of systems.
// The Scheduler initializes Query fields on registration, captures each query
// right before its system runs, executes systems in registration order and
// flushes the command buffer at the end of the frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Point](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Point{X: 0, Y: 0}, Heading{Radians: 0}, Speed{Value: 10})
	storage.Spawn(Point{X: 100, Y: 100}, Heading{Radians: math.Pi / 2}, Speed{Value: 4})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&DragSystem{Factor: 0.5})
	scheduler.Register(&DriftSystem{})

	scheduler.Once(1.0)

	view := ecs.NewView[struct {
		*Point
		*Speed
	}](storage)

	fmt.Println("After one frame:")
	for item := range view.Iter() {
		fmt.Printf("Position: (%.0f, %.0f), Speed: %.0f\n", item.Point.X, item.Point.Y, item.Speed.Value)
	}

	// Output:
	// After one frame:
	// Position: (5, 0), Speed: 5
	// Position: (100, 102), Speed: 2
}

// ExampleScheduler_Run demonstrates running a continuous loop.
// Run blocks and executes all systems at a fixed interval until the context is
// cancelled.
func ExampleScheduler_Run() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Point](registry)
	ecs.RegisterComponent[Heading](registry)
	ecs.RegisterComponent[Speed](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Point{}, Heading{}, Speed{Value: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&DriftSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}

type Clock struct {
	Frames  int
	Elapsed float64
}

type Tally struct {
	Points int
}

type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Frames++
	clock.Elapsed += frame.DeltaTime
}

type TallySystem struct {
	Entities ecs.Query[struct{ *Point }]
	Tally    ecs.Singleton[Tally]
}

func (s *TallySystem) Execute(frame *ecs.UpdateFrame) {
	s.Tally.Get().Points += s.Entities.Count()
}

// ExampleScheduler_withSingletons demonstrates singleton fields on systems.
// Singleton fields are initialized by the Scheduler just like Query fields.
func ExampleScheduler_withSingletons() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Point](registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[Clock](storage)
	ecs.NewSingleton[Tally](storage)

	storage.Spawn(Point{X: 0})
	storage.Spawn(Point{X: 10})
	storage.Spawn(Point{X: 20})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&TallySystem{})

	scheduler.Once(0.25)
	scheduler.Once(0.25)
	scheduler.Once(0.25)

	var clock *Clock
	storage.ReadSingleton(&clock)
	fmt.Printf("Frames: %d, Time: %.2f\n", clock.Frames, clock.Elapsed)

	var tally *Tally
	storage.ReadSingleton(&tally)
	fmt.Printf("Tally: %d\n", tally.Points)

	// Output:
	// Frames: 3, Time: 0.75
	// Tally: 9
}
