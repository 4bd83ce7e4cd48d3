// Package layout maps a track's column forest to positioned nodes and
// parent/child edges for a node-graph renderer.
package layout

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/trackflow/internal/domain"
	"github.com/alexanderramin/trackflow/internal/scheduler"
)

// Geometry, in graph units. These values are shared with existing
// renderers and must not change.
const (
	NodeWidth   = 500
	MinDistance = 300
	NodeHeight  = 100
	ColumnGap   = 50
	RowSpacing  = 30
	IndentStep  = 50
	WidthTaper  = 20
)

// Band is the horizontal space reserved for each column.
const Band = NodeWidth + MinDistance

// LayoutTrack lays out columns left to right, centred on x = 0, with each
// column's sub-columns stacked below it. The graph is always complete: when
// a start time cannot be derived the affected labels stay empty and the
// derivation errors are returned joined.
func LayoutTrack(columns []domain.Column) (Graph, error) {
	b := &builder{}
	startX := -(len(columns) * Band) / 2
	for i, col := range columns {
		b.column(col, startX+i*Band)
	}
	return Graph{Nodes: b.nodes, Edges: b.edges}, errors.Join(b.errs...)
}

type builder struct {
	nodes []Node
	edges []Edge
	errs  []error

	col     domain.Column
	columnX int
	cursor  int
}

func (b *builder) column(col domain.Column, x int) {
	b.col = col
	b.columnX = x
	b.cursor = NodeHeight + ColumnGap

	b.nodes = append(b.nodes, Node{
		ID:       col.ID,
		Kind:     KindColumn,
		ColumnID: col.ID,
		Position: Position{X: x, Y: 0},
		Width:    NodeWidth,
		Data: NodeData{
			Label:     col.Title,
			StartTime: col.StartTime,
			EndTime:   col.EndTime,
			Type:      col.Type,
		},
	})

	if len(col.SubColumns) == 0 {
		return
	}
	slots, err := scheduler.DeriveTimes(col.StartTime, scheduler.Durations(col.SubColumns))
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("column %q: %w", col.Title, err))
	}
	b.level(col.SubColumns, col.ID, 1, slots)
}

// level places subs at the given nesting level (1 for a column's direct
// children) and returns the cursor position after the last one. slots is
// nil when the level's times could not be derived.
func (b *builder) level(subs []domain.SubColumn, parentID string, level int, slots []scheduler.Slot) int {
	maxY := b.cursor
	x := b.columnX + (level-1)*level*IndentStep

	for i, sub := range subs {
		var slot scheduler.Slot
		if slots != nil {
			slot = slots[i]
		}

		b.nodes = append(b.nodes, Node{
			ID:       sub.ID,
			Kind:     KindSubColumn,
			ColumnID: b.col.ID,
			Position: Position{X: x, Y: b.cursor},
			Width:    NodeWidth - level*WidthTaper,
			Data: NodeData{
				Label:       sub.Title,
				StartTime:   slot.Start,
				EndTime:     slot.End,
				Speaker:     sub.Speaker,
				Duration:    sub.Duration,
				Notes:       sub.Notes,
				Depth:       level - 1,
				HasChildren: sub.HasChildren(),
			},
		})
		b.edges = append(b.edges, Edge{
			ID:       parentID + "-" + sub.ID,
			Source:   parentID,
			Target:   sub.ID,
			Type:     EdgeType,
			Animated: true,
			Stroke:   EdgeStroke,
		})

		b.cursor += NodeHeight + RowSpacing
		maxY = b.cursor

		if !sub.HasChildren() {
			continue
		}
		var childSlots []scheduler.Slot
		if slots != nil {
			var err error
			childSlots, err = scheduler.DeriveTimes(slot.Start, scheduler.Durations(sub.SubColumns))
			if err != nil {
				b.errs = append(b.errs, fmt.Errorf("column %q: children of %q: %w", b.col.Title, sub.Title, err))
			}
		}
		nestedMaxY := b.level(sub.SubColumns, sub.ID, level+1, childSlots)
		b.cursor = nestedMaxY + RowSpacing
		maxY = b.cursor
	}
	return maxY
}
