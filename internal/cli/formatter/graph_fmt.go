package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/trackflow/internal/layout"
)

// FormatGraph renders a laid-out graph as a node table followed by a
// one-line summary of edge count and bounds.
func FormatGraph(g layout.Graph) string {
	if len(g.Nodes) == 0 {
		return Dim("Empty graph.") + "\n"
	}

	headers := []string{"NODE", "KIND", "X", "Y", "WIDTH", "TIME", "LABEL"}
	rows := make([][]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		kind := "section"
		label := n.Data.Label
		if n.Kind == layout.KindSubColumn {
			kind = fmt.Sprintf("item/%d", n.Data.Depth)
			label = strings.Repeat("  ", n.Data.Depth) + DepthStyle(n.Data.Depth).Render(label)
		} else {
			label = StyleBold.Render(label)
		}
		rows = append(rows, []string{
			TruncID(n.ID),
			kind,
			strconv.Itoa(n.Position.X),
			strconv.Itoa(n.Position.Y),
			strconv.Itoa(n.Width),
			TimeRange(n.Data.StartTime, n.Data.EndTime),
			label,
		})
	}

	b := g.Bounds()
	var out strings.Builder
	out.WriteString(RenderTableAligned(headers, rows, map[int]bool{2: true, 3: true, 4: true}))
	out.WriteString("\n")
	out.WriteString(Dim(fmt.Sprintf("%d nodes, %d edges, bounds %dx%d at (%d, %d)",
		len(g.Nodes), len(g.Edges), b.Width(), b.Height(), b.MinX, b.MinY)))
	out.WriteString("\n")
	return out.String()
}
