// Package topology provides the undirected multigraph built from
// atomic segments, following Clean Architecture principles with zero
// external dependencies.
package topology

import (
	"github.com/netmend/netmend/internal/core/geometry"
)

// Edge is a segment realized in the graph between two node indices.
type Edge struct {
	U       int              `json:"u"`
	V       int              `json:"v"`
	Segment geometry.Segment `json:"segment"`
}

// Graph is an undirected multigraph whose nodes are endpoint
// coordinates. Coincident endpoints across unrelated segments unify
// into one node by exact coordinate equality; this is the connectivity
// signal everything else relies on.
//
// Nodes are kept in an index arena so edges and adjacency work on
// plain ints rather than string-keyed attribute bags.
type Graph struct {
	nodes []geometry.Point
	index map[geometry.Point]int
	edges []Edge
	adj   [][]int // node index -> incident edge indices
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[geometry.Point]int)}
}

// BuildGraph constructs a graph from a flat segment set.
func BuildGraph(segments []geometry.Segment) *Graph {
	g := NewGraph()
	for _, s := range segments {
		g.AddSegment(s)
	}
	return g
}

// AddSegment inserts a segment as a new edge, creating nodes for its
// endpoints when they have not been seen before. Returns the edge index.
func (g *Graph) AddSegment(s geometry.Segment) int {
	u := g.node(s.Start)
	v := g.node(s.End)
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Segment: s})
	g.adj[u] = append(g.adj[u], idx)
	if v != u {
		g.adj[v] = append(g.adj[v], idx)
	}
	return idx
}

// node returns the arena index for a coordinate, allocating it on
// first sight.
func (g *Graph) node(p geometry.Point) int {
	if idx, ok := g.index[p]; ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, p)
	g.index[p] = idx
	g.adj = append(g.adj, nil)
	return idx
}

// NodeCount returns the number of distinct coordinates in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Node returns the coordinate at the given arena index.
func (g *Graph) Node(idx int) geometry.Point {
	return g.nodes[idx]
}

// NodeIndex looks up the arena index of a coordinate.
func (g *Graph) NodeIndex(p geometry.Point) (int, bool) {
	idx, ok := g.index[p]
	return idx, ok
}

// Edge returns the edge at the given index.
func (g *Graph) Edge(idx int) Edge {
	return g.edges[idx]
}

// Segments returns every segment currently in the graph, in insertion
// order.
func (g *Graph) Segments() []geometry.Segment {
	out := make([]geometry.Segment, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Segment
	}
	return out
}

// Incident returns the edge indices touching a node.
func (g *Graph) Incident(node int) []int {
	return g.adj[node]
}

// Neighbor returns the node on the other side of an edge from the
// given node. Self-loops return the node itself.
func (e Edge) Neighbor(node int) int {
	if e.U == node {
		return e.V
	}
	return e.U
}
