package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/squarez/ecs"
)

func NewComponentTableComponent() ComponentTableComponent {
	return ComponentTableComponent{
		sortColumn:    1,
		sortAscending: false,
	}
}

// Render lists every component type with its owner count. Clicking a row
// selects that type; the name is returned with ok set on the frame it is clicked.
func (ct *ComponentTableComponent) Render(storage *ecs.Storage) (typeName string, ok bool) {
	if !imgui.BeginV("Components", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return "", false
	}

	ct.rows = storage.CollectStats().ComponentBreakdown
	ct.sortRows()

	maxEntityCount := 0
	for _, row := range ct.rows {
		maxEntityCount = max(maxEntityCount, row.EntityCount)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ct.sortColumn = int(spec.ColumnIndex())
			ct.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ct.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range ct.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(row.TypeName, ct.selectedType == row.TypeName, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ct.selectedType = row.TypeName
				typeName, ok = row.TypeName, true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(row.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return typeName, ok
}

func (ct *ComponentTableComponent) sortRows() {
	sort.SliceStable(ct.rows, func(i, j int) bool {
		a, b := ct.rows[i], ct.rows[j]
		var less bool

		switch ct.sortColumn {
		case 0:
			less = a.TypeName < b.TypeName
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !ct.sortAscending {
			return !less
		}
		return less
	})
}
