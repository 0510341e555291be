package ecs_test

import (
	"fmt"

	"github.com/plus3/squarez/ecs"
)

type WorldBounds struct {
	Width, Height float64
}

type Scoreboard struct {
	Score int
	Lost  bool
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// Singletons hold one value per type that is not attached to any entity, such as
// world extents or the current score.
func ExampleNewSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	bounds := ecs.NewSingleton[WorldBounds](storage, WorldBounds{Width: 1280, Height: 720})
	fmt.Printf("World: %.0fx%.0f\n", bounds.Get().Width, bounds.Get().Height)

	// The initializer is ignored once the singleton exists
	again := ecs.NewSingleton[WorldBounds](storage, WorldBounds{Width: 1, Height: 1})
	fmt.Printf("Same world: %.0fx%.0f\n", again.Get().Width, again.Get().Height)

	// Output:
	// World: 1280x720
	// Same world: 1280x720
}

// ExampleSingleton_multipleReferences shows that every Singleton accessor for a
// type shares the same underlying value.
func ExampleSingleton_multipleReferences() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	first := ecs.NewSingleton[Scoreboard](storage)
	second := ecs.NewSingleton[Scoreboard](storage)

	first.Get().Score += 3
	second.Get().Lost = true

	fmt.Printf("Score %d, lost %v\n", second.Get().Score, first.Get().Lost)

	// Output:
	// Score 3, lost true
}

// ExampleStorage_ReadSingleton demonstrates reading a singleton outside of systems.
func ExampleStorage_ReadSingleton() {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)

	storage.AddSingleton(Scoreboard{Score: 12})

	var board *Scoreboard
	if storage.ReadSingleton(&board) {
		fmt.Printf("Score: %d\n", board.Score)
	}

	var bounds *WorldBounds
	if !storage.ReadSingleton(&bounds) {
		fmt.Println("Bounds not found")
	}

	// Output:
	// Score: 12
	// Bounds not found
}
