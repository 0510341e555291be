package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/squarez/ecs"
)

// How many matching entity ids the debugger lists.
const queryDebuggerSampleSize = 20

type QueryDebuggerCache struct {
	componentTypes []string
	lastTypeCount  int
}

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache: &QueryDebuggerCache{
			lastTypeCount: -1,
		},
	}
}

func (qd *QueryDebuggerComponent) Render(storage *ecs.Storage) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.rebuildCacheIfNeeded(storage)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range qd.cache.componentTypes {
		selected := qd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				qd.selectedComponentTypes[compType] = true
			} else {
				delete(qd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	if len(qd.selectedComponentTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := qd.findMatchingEntities(storage)
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matching)))

	if imgui.TreeNodeStr("Entity Sample") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryEntityTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Index")
			imgui.TableSetupColumn("Generation")
			imgui.TableHeadersRow()

			for _, id := range matching[:min(len(matching), queryDebuggerSampleSize)] {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("%d", id.Index()))

				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%d", id.Generation()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (qd *QueryDebuggerComponent) rebuildCacheIfNeeded(storage *ecs.Storage) {
	breakdown := storage.CollectStats().ComponentBreakdown
	if qd.cache.lastTypeCount == len(breakdown) {
		return
	}
	qd.cache.lastTypeCount = len(breakdown)

	qd.cache.componentTypes = qd.cache.componentTypes[:0]
	for _, comp := range breakdown {
		qd.cache.componentTypes = append(qd.cache.componentTypes, comp.TypeName)
	}
	sort.Strings(qd.cache.componentTypes)
}

// findMatchingEntities returns the live entities holding every selected type.
func (qd *QueryDebuggerComponent) findMatchingEntities(storage *ecs.Storage) []ecs.EntityId {
	var matching []ecs.EntityId

	for _, id := range storage.Entities() {
		held := 0
		for _, t := range storage.ComponentTypes(id) {
			if qd.selectedComponentTypes[t.String()] {
				held++
			}
		}
		if held == len(qd.selectedComponentTypes) {
			matching = append(matching, id)
		}
	}

	return matching
}
