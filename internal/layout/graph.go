package layout

import "github.com/alexanderramin/trackflow/internal/domain"

// Kind distinguishes the two node shapes a renderer draws.
type Kind string

const (
	KindColumn    Kind = "columnNode"
	KindSubColumn Kind = "subColumnNode"
)

// Edge style shared by every parent/child connector.
const (
	EdgeType   = "smoothstep"
	EdgeStroke = "#94a3b8"
)

// Position is a node's top-left corner in graph units.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NodeData carries the labels a renderer shows inside a node. Column nodes
// fill Label, StartTime, EndTime and Type; sub-column nodes fill the rest.
type NodeData struct {
	Label       string            `json:"label"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	Type        domain.ColumnType `json:"type,omitempty"`
	Speaker     string            `json:"speaker,omitempty"`
	Duration    int               `json:"duration,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Depth       int               `json:"depth"`
	HasChildren bool              `json:"hasChildren"`
}

// Node is one positioned box of the graph.
type Node struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type"`
	ColumnID string   `json:"columnId"`
	Position Position `json:"position"`
	Width    int      `json:"width"`
	Data     NodeData `json:"data"`
}

// Edge connects a parent node to one of its direct children.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Type     string `json:"type"`
	Animated bool   `json:"animated"`
	Stroke   string `json:"stroke"`
}

// Graph is the materialized node/edge view of one track.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Bounds returns the box enclosing every node, treating each node as
// NodeHeight tall. An empty graph has a zero Rect.
func (g Graph) Bounds() Rect {
	if len(g.Nodes) == 0 {
		return Rect{}
	}
	first := g.Nodes[0]
	r := Rect{
		MinX: first.Position.X,
		MinY: first.Position.Y,
		MaxX: first.Position.X + first.Width,
		MaxY: first.Position.Y + NodeHeight,
	}
	for _, n := range g.Nodes[1:] {
		r.MinX = min(r.MinX, n.Position.X)
		r.MinY = min(r.MinY, n.Position.Y)
		r.MaxX = max(r.MaxX, n.Position.X+n.Width)
		r.MaxY = max(r.MaxY, n.Position.Y+NodeHeight)
	}
	return r
}

// Node returns the node with the given id.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Children returns the ids of the direct children of id in edge order.
func (g Graph) Children(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.Source == id {
			out = append(out, e.Target)
		}
	}
	return out
}
