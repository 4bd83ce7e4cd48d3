package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int // 0 renders without a connector
	IsLast bool
	Time   string // optional time label shown before the title
	Detail string // optional right-aligned badge
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders a list of TreeItems, given in depth-first order, as an
// indented tree using box-drawing connectors. Titles are coloured by depth
// and detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// closed[l] is true once the last child at level l has been printed, so
	// deeper rows stop drawing that level's pipe.
	var closed []bool

	for idx, item := range items {
		for len(closed) <= item.Level {
			closed = append(closed, false)
		}

		var prefix strings.Builder
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if closed[l] {
					prefix.WriteString(treeBlank)
				} else {
					prefix.WriteString(treePipe)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		closed[item.Level] = item.IsLast
		for l := item.Level + 1; l < len(closed); l++ {
			closed[l] = false
		}

		title := StyleBold.Render(item.Title)
		if item.Level > 0 {
			title = DepthStyle(item.Level - 1).Render(item.Title)
		}
		content := StyleDim.Render(prefix.String())
		if item.Time != "" {
			content += StyleDim.Render(item.Time) + "  "
		}
		content += title
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
