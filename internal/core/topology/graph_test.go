package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

func seg(x1, y1, x2, y2 float64) geometry.Segment {
	return geometry.Segment{
		Start: geometry.Point{X: x1, Y: y1},
		End:   geometry.Point{X: x2, Y: y2},
	}
}

func TestGraph_NodeUnification(t *testing.T) {
	// Segments sharing an exact endpoint coordinate share a node.
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 1),
		seg(1, 1, 2, 2),
	})

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	shared, ok := g.NodeIndex(geometry.Point{X: 1, Y: 1})
	require.True(t, ok)
	assert.Len(t, g.Incident(shared), 2)
}

func TestGraph_NearEndpointsStayDistinct(t *testing.T) {
	// No tolerance: endpoints a hair apart are separate nodes.
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 1),
		seg(1+1e-12, 1, 2, 2),
	})

	assert.Equal(t, 4, g.NodeCount())
}

func TestGraph_Multigraph(t *testing.T) {
	// Two segments between the same endpoints are both kept.
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(0, 0, 1, 0),
	})

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_Segments(t *testing.T) {
	in := []geometry.Segment{seg(0, 0, 1, 0), seg(5, 5, 6, 6)}
	g := BuildGraph(in)

	assert.Equal(t, in, g.Segments())
}

func TestGraph_AddSegmentReturnsEdgeIndex(t *testing.T) {
	g := NewGraph()
	idx := g.AddSegment(seg(0, 0, 1, 0))
	assert.Equal(t, 0, idx)

	e := g.Edge(idx)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, g.Node(e.U))
	assert.Equal(t, geometry.Point{X: 1, Y: 0}, g.Node(e.V))
}
