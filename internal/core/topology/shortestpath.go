package topology

import (
	"container/heap"

	"github.com/netmend/netmend/internal/core/geometry"
)

// ShortestPath returns the point sequence of the cheapest path between
// two coordinates (Dijkstra). With byLength, edges weigh their stored
// length attribute, falling back to euclidean length when unset;
// otherwise every edge costs one hop.
func (g *Graph) ShortestPath(from, to geometry.Point, byLength bool) ([]geometry.Point, error) {
	src, ok := g.NodeIndex(from)
	if !ok {
		return nil, ErrNodeNotFound
	}
	dst, ok := g.NodeIndex(to)
	if !ok {
		return nil, ErrNodeNotFound
	}

	dist := make([]float64, len(g.nodes))
	prev := make([]int, len(g.nodes))
	done := make([]bool, len(g.nodes))
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}
	dist[src] = 0

	pq := &nodeQueue{{node: src, cost: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		if done[item.node] {
			continue
		}
		done[item.node] = true
		if item.node == dst {
			break
		}
		for _, ei := range g.adj[item.node] {
			e := g.edges[ei]
			next := e.Neighbor(item.node)
			w := 1.0
			if byLength {
				w = e.Segment.Attributes.Length
				if w <= 0 {
					w = e.Segment.Length()
				}
			}
			cost := item.cost + w
			if dist[next] < 0 || cost < dist[next] {
				dist[next] = cost
				prev[next] = item.node
				heap.Push(pq, nodeItem{node: next, cost: cost})
			}
		}
	}

	if !done[dst] {
		return nil, ErrNoPath
	}
	var path []geometry.Point
	for n := dst; n != -1; n = prev[n] {
		path = append(path, g.nodes[n])
	}
	// Reverse into source-to-target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type nodeItem struct {
	node int
	cost float64
}

type nodeQueue []nodeItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
