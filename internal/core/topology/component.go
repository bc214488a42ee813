package topology

import "github.com/netmend/netmend/internal/core/geometry"

// Component is a maximal set of mutually reachable nodes and the edges
// between them. Ids are assigned in discovery order within one
// grouping pass and are recomputed whenever connectivity changes; they
// carry no meaning across passes or across differently-ordered inputs.
type Component struct {
	ID    int   `json:"id"`
	Nodes []int `json:"nodes"`
	Edges []int `json:"edges"`
}

// Points returns the coordinates of the component's nodes.
func (c *Component) Points(g *Graph) []geometry.Point {
	out := make([]geometry.Point, len(c.Nodes))
	for i, n := range c.Nodes {
		out[i] = g.Node(n)
	}
	return out
}

// Components computes the connected components of the graph by BFS
// over the adjacency structure, starting from the lowest unvisited
// node index.
func (g *Graph) Components() []Component {
	visited := make([]bool, len(g.nodes))
	edgeSeen := make([]bool, len(g.edges))
	var components []Component

	for start := range g.nodes {
		if visited[start] {
			continue
		}
		comp := Component{ID: len(components)}
		queue := []int{start}
		visited[start] = true
		for qi := 0; qi < len(queue); qi++ {
			n := queue[qi]
			comp.Nodes = append(comp.Nodes, n)
			for _, ei := range g.adj[n] {
				if !edgeSeen[ei] {
					edgeSeen[ei] = true
					comp.Edges = append(comp.Edges, ei)
				}
				next := g.edges[ei].Neighbor(n)
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// Partition builds a union-find over the graph's nodes with every edge
// applied, so callers can track connectivity incrementally instead of
// regrouping from scratch.
func (g *Graph) Partition() *UnionFind {
	uf := NewUnionFind(len(g.nodes))
	for _, e := range g.edges {
		uf.Union(e.U, e.V)
	}
	return uf
}
