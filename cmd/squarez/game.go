package main

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/squarez/ecs"
	"github.com/plus3/squarez/ecs/debugui"
	debugui_ebiten "github.com/plus3/squarez/ecs/debugui/ebiten"
	"github.com/plus3/squarez/sim"
)

var keymap = map[sim.Button][]ebiten.Key{
	sim.ButtonStart: {ebiten.KeyEnter, ebiten.KeyP},
	sim.ButtonUp:    {ebiten.KeyUp, ebiten.KeyW},
	sim.ButtonDown:  {ebiten.KeyDown, ebiten.KeyS},
	sim.ButtonLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	sim.ButtonRight: {ebiten.KeyRight, ebiten.KeyD},
	sim.ButtonA:     {ebiten.KeySpace},
}

// Game adapts the simulation to ebiten.
type Game struct {
	sim    *sim.Simulation
	logger *slog.Logger
	snap   sim.Snapshot

	// Inspector, present only with -debug.
	ui      *ecs.Scheduler
	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	imgui   *ecs.Singleton[debugui.ImguiInputState]
}

func NewGame(s *sim.Simulation, logger *slog.Logger) *Game {
	return &Game{sim: s, logger: logger}
}

// EnableInspector sets up the ImGui inspector over the simulation's storage.
// The backend takes over window creation.
func (g *Game) EnableInspector() {
	registry := ecs.NewComponentRegistry()
	debugui.RegisterDebugUIComponents(registry)
	ui := ecs.NewStorage(registry)

	config := g.sim.Config()
	g.backend = ecs.NewSingleton(ui, debugui_ebiten.NewImguiBackend("squarez", int(config.Width), int(config.Height)))
	g.imgui = ecs.NewSingleton(ui, debugui.ImguiInputState{})
	debugui.SpawnInspector(ui, debugui.NewInspector(g.sim.Storage(), g.sim.Stats))

	g.ui = ecs.NewScheduler(ui)
	g.ui.Register(&debugui.ImguiSystem{})
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	input := sim.Buttons{}
	if g.imgui == nil || !g.imgui.Get().WantCaptureKeyboard {
		input = readButtons()
	}
	g.sim.Tick(input, 1/float64(ebiten.TPS()))

	if g.ui != nil {
		g.backend.Get().BeginFrame()
		g.ui.Once(1 / float64(ebiten.TPS()))
		g.backend.Get().EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.SnapshotInto(&g.snap)
	draw(screen, &g.snap)

	if g.ui != nil {
		g.backend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.ui != nil {
		g.backend.Get().Layout(outsideWidth, outsideHeight)
	}
	config := g.sim.Config()
	return int(config.Width), int(config.Height)
}

func readButtons() sim.Buttons {
	var b sim.Buttons
	for button, keys := range keymap {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				b.HeldMask |= sim.Mask(button)
			}
			if inpututil.IsKeyJustPressed(key) {
				b.PressedMask |= sim.Mask(button)
			}
		}
	}
	return b
}
