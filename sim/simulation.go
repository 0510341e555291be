package sim

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/plus3/squarez/ecs"
)

// Simulation owns the component store and advances it one tick at a time.
type Simulation struct {
	config  Config
	logger  *slog.Logger
	rng     *rand.Rand
	audio   Audio
	storage *ecs.Storage

	// lifecycle runs every tick, gameplay only while playing.
	lifecycle *ecs.Scheduler
	gameplay  *ecs.Scheduler

	game     *ecs.Singleton[Game]
	controls *ecs.Singleton[Controls]

	draw drawViews
}

type Option func(*Simulation)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithRand sets the random source used for spawning. The default is seeded
// from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithAudio sets where sound cues are played.
func WithAudio(audio Audio) Option {
	return func(s *Simulation) {
		s.audio = audio
	}
}

// New builds a simulation with the player at the centre and config.Boxes
// hazards scattered around the world.
func New(config Config, opts ...Option) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	s := &Simulation{config: config}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}
	if s.audio == nil {
		s.audio = silence{}
	}

	s.storage = ecs.NewStorage(NewRegistry())

	world := World{Width: config.Width, Height: config.Height}
	s.game = ecs.NewSingleton(s.storage, Game{Mode: ModePlaying})
	s.controls = ecs.NewSingleton(s.storage, Controls{Input: Buttons{}})
	ecs.NewSingleton(s.storage, world)
	ecs.NewSingleton(s.storage, Speaker{Audio: s.audio})
	spawner := ecs.NewSingleton(s.storage, NewSpawner(world, s.rng)).Get()

	s.lifecycle = ecs.NewScheduler(s.storage)
	s.lifecycle.Register(&TimerSystem{})

	s.gameplay = ecs.NewScheduler(s.storage)
	for _, system := range gameplaySystems() {
		s.gameplay.Register(system)
	}

	s.draw = newDrawViews(s.storage)

	spawner.Player(s.storage)
	spawner.Boxes(s.storage, config.Boxes)

	s.logger.Debug("simulation started",
		"width", config.Width,
		"height", config.Height,
		"boxes", config.Boxes,
		"entities", s.storage.EntityCount())

	return s, nil
}

// gameplaySystems lists the systems that run while playing, in order.
func gameplaySystems() []ecs.System {
	return []ecs.System{
		&InputSystem{},
		&AccelerationSystem{},
		&RotationSystem{},
		&SteeringSystem{},
		&FlockingSystem{},
		&StayInBoundsSystem{},
		&MaxVelocitySystem{},
		&MovementSystem{},
		&FiringSystem{},
		&CollisionSystem{},
		&DeathSystem{},
		&OffScreenSystem{},
		&DefeatSystem{},
	}
}

// Tick advances the simulation by dt seconds. Timers always run; gameplay
// runs only while playing. Start toggles the pause. It always reports true.
func (s *Simulation) Tick(input Input, dt float64) bool {
	if input == nil {
		input = Buttons{}
	}
	s.controls.Get().Input = input

	s.lifecycle.Once(dt)

	game := s.game.Get()
	before := game.Mode
	switch game.Mode {
	case ModePlaying:
		if input.Pressed(ButtonStart) {
			game.Mode = ModePaused
		}
		s.gameplay.Once(dt)
	case ModePaused:
		if input.Pressed(ButtonStart) {
			game.Mode = ModePlaying
		}
	}

	if game.Mode != before {
		s.logger.Info("mode changed", "from", before, "to", game.Mode, "score", game.Score)
	}
	return true
}

func (s *Simulation) Config() Config {
	return s.config
}

// Storage exposes the component store for inspection tools.
func (s *Simulation) Storage() *ecs.Storage {
	return s.storage
}

func (s *Simulation) Mode() Mode {
	return s.game.Get().Mode
}

func (s *Simulation) Score() int {
	return s.game.Get().Score
}

// Stats reports per-system timings for the lifecycle and gameplay pipelines.
func (s *Simulation) Stats() []*ecs.SchedulerStats {
	return []*ecs.SchedulerStats{s.lifecycle.GetStats(), s.gameplay.GetStats()}
}
