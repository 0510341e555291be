package debugui

import "github.com/plus3/squarez/ecs"

// Inspector renders the debug panels for a target storage.
type Inspector struct {
	target     *ecs.Storage
	schedulers func() []*ecs.SchedulerStats
	timer      *FrameTimer

	browser   EntityBrowserComponent
	inspector ComponentInspectorComponent
	table     ComponentTableComponent
	perf      PerformanceStatsComponent
	query     QueryDebuggerComponent
}

// NewInspector builds the panels for target. schedulers may be nil; when set
// it supplies the per-system timings shown in the performance panel.
func NewInspector(target *ecs.Storage, schedulers func() []*ecs.SchedulerStats) *Inspector {
	return &Inspector{
		target:     target,
		schedulers: schedulers,
		timer:      NewFrameTimer(),
		browser:    NewEntityBrowserComponent(100),
		inspector:  NewComponentInspectorComponent(),
		table:      NewComponentTableComponent(),
		perf:       NewPerformanceStatsComponent(120),
		query:      NewQueryDebuggerComponent(),
	}
}

// Render draws every panel. It must run between the backend's BeginFrame and EndFrame.
func (in *Inspector) Render() {
	var stats []*ecs.SchedulerStats
	if in.schedulers != nil {
		stats = in.schedulers()
	}

	if typeName, ok := in.table.Render(in.target); ok {
		in.browser.FilterByComponent(typeName)
	}
	in.browser.Render(in.target)
	in.inspector.Render(in.target, in.browser.GetSelectedEntity())
	in.perf.Render(in.target, in.timer.GetDeltaTime(), stats)
	in.query.Render(in.target)
}

// SpawnInspector attaches the inspector to ui so that ImguiSystem renders it.
func SpawnInspector(ui *ecs.Storage, in *Inspector) ecs.EntityId {
	return ui.Spawn(ImguiItem{Render: in.Render})
}

func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}
