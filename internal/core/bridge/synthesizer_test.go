package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/topology"
)

func seg(x1, y1, x2, y2 float64) geometry.Segment {
	s := geometry.Segment{
		Start: geometry.Point{X: x1, Y: y1},
		End:   geometry.Point{X: x2, Y: y2},
	}
	s.Attributes.Length = s.Length()
	return s
}

func TestConnect_AlreadyConnected(t *testing.T) {
	g := topology.BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(1, 0, 2, 0),
	})
	s := NewSynthesizer(g)

	bridges, err := s.Connect()
	require.NoError(t, err)
	assert.Empty(t, bridges)
	assert.Equal(t, StateConnected, s.State())
}

func TestConnect_EmptyGraph(t *testing.T) {
	s := NewSynthesizer(topology.NewGraph())

	bridges, err := s.Connect()
	require.NoError(t, err)
	assert.Empty(t, bridges)
	assert.Equal(t, StateConnected, s.State())
}

func TestConnect_TwoComponents(t *testing.T) {
	g := topology.BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(5, 0, 6, 0),
	})
	s := NewSynthesizer(g)

	bridges, err := s.Connect()
	require.NoError(t, err)
	require.Len(t, bridges, 1)

	b := bridges[0]
	assert.Equal(t, geometry.Point{X: 1, Y: 0}, b.Start)
	assert.Equal(t, geometry.Point{X: 5, Y: 0}, b.End)
	assert.Equal(t, geometry.CategoryBridge, b.Attributes.Category)
	assert.InDelta(t, 4, b.Attributes.Length, 1e-12)

	assert.Len(t, g.Components(), 1)
	assert.Equal(t, StateConnected, s.State())
}

func TestConnect_ManyComponents(t *testing.T) {
	// Five disjoint unit segments along the x axis.
	var segments []geometry.Segment
	for i := 0; i < 5; i++ {
		x := float64(i * 10)
		segments = append(segments, seg(x, 0, x+1, 0))
	}
	g := topology.BuildGraph(segments)
	require.Len(t, g.Components(), 5)

	bridges, err := NewSynthesizer(g).Connect()
	require.NoError(t, err)
	assert.Len(t, bridges, 4)
	assert.Len(t, g.Components(), 1)
	for _, b := range bridges {
		assert.Equal(t, geometry.CategoryBridge, b.Attributes.Category)
		assert.False(t, b.Degenerate())
	}
}

func TestConnect_NearestComponentFirst(t *testing.T) {
	// The accumulator starts at the first component; the closer of the
	// two remaining components gets bridged first.
	g := topology.BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(100, 0, 101, 0),
		seg(3, 0, 4, 0),
	})

	bridges, err := NewSynthesizer(g).Connect()
	require.NoError(t, err)
	require.Len(t, bridges, 2)
	assert.Equal(t, geometry.Point{X: 1, Y: 0}, bridges[0].Start)
	assert.Equal(t, geometry.Point{X: 3, Y: 0}, bridges[0].End)
	assert.Equal(t, geometry.Point{X: 4, Y: 0}, bridges[1].Start)
	assert.Equal(t, geometry.Point{X: 100, Y: 0}, bridges[1].End)
}
