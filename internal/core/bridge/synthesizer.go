// Package bridge implements the greedy merge loop that connects a
// multi-component topology graph by synthesizing straight bridging
// segments between the nearest points of unreachable parts.
package bridge

import (
	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/topology"
)

// State tracks the synthesizer through one Connect call.
type State string

const (
	// StateMultipleComponents means the graph still has unreachable parts.
	StateMultipleComponents State = "multiple_components"
	// StateMerging means a bridging pass is in progress.
	StateMerging State = "merging"
	// StateConnected is terminal: the graph is one component.
	StateConnected State = "connected"
)

// Synthesizer grows a connected accumulator of components by repeatedly
// bridging the geometrically nearest pair of points between the
// accumulator and the rest. Each bridge is the shortest segment that
// joins the frontier to some remaining component, so every individual
// bridge is minimal; the total bridged length across all components is
// not (that would need a spanning tree over all pairwise component
// distances, which is deliberately not attempted).
//
// The synthesizer holds a mutable borrow of the graph for the duration
// of one Connect call and must not be retained beyond it.
type Synthesizer struct {
	graph *topology.Graph
	state State
}

// NewSynthesizer creates a synthesizer over the given graph.
func NewSynthesizer(g *topology.Graph) *Synthesizer {
	return &Synthesizer{graph: g, state: StateMultipleComponents}
}

// State returns the current synthesizer state.
func (s *Synthesizer) State() State {
	return s.state
}

// Connect bridges the graph's components until exactly one remains and
// returns the synthesized segments. A graph that is already connected
// (or empty) yields no bridges.
//
// Termination: every iteration moves at least one component into the
// accumulator, so a graph with K components finishes in at most K-1
// iterations and gains at most K-1 bridges.
func (s *Synthesizer) Connect() ([]geometry.Segment, error) {
	components := s.graph.Components()
	if len(components) <= 1 {
		s.state = StateConnected
		return nil, nil
	}
	for i := range components {
		if len(components[i].Nodes) == 0 {
			// Unreachable by construction; a node-less component means
			// decomposition or grouping is broken upstream.
			return nil, topology.ErrEmptyComponent
		}
	}
	s.state = StateMerging

	// Track merges with a tagged partition over component ids instead
	// of regrouping the whole graph after every bridge.
	partition := topology.NewUnionFind(len(components))
	nodeComponent := make([]int, s.graph.NodeCount())
	for _, c := range components {
		for _, n := range c.Nodes {
			nodeComponent[n] = c.ID
		}
	}

	accumulator := components[0].ID
	var bridges []geometry.Segment
	for partition.Count() > 1 {
		inside, outside := s.frontier(components, partition, accumulator)

		from, to, err := geometry.NearestPair(inside, outside)
		if err != nil {
			return nil, err
		}

		seg := geometry.Segment{
			Start:      from,
			End:        to,
			Attributes: geometry.Attributes{Category: geometry.CategoryBridge},
		}
		seg.Attributes.Length = seg.Length()
		s.graph.AddSegment(seg)
		bridges = append(bridges, seg)

		// Both endpoints come from existing component node sets, so the
		// lookup cannot miss.
		target, _ := s.graph.NodeIndex(to)
		partition.Union(accumulator, nodeComponent[target])
	}

	s.state = StateConnected
	return bridges, nil
}

// frontier splits every component's coordinates into the accumulator
// point set and the point set of components not yet reached.
func (s *Synthesizer) frontier(components []topology.Component, partition *topology.UnionFind, accumulator int) (inside, outside []geometry.Point) {
	for i := range components {
		pts := components[i].Points(s.graph)
		if partition.Connected(components[i].ID, accumulator) {
			inside = append(inside, pts...)
		} else {
			outside = append(outside, pts...)
		}
	}
	return inside, outside
}
