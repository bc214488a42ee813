package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

func TestShortestPath_ByLength(t *testing.T) {
	// Two routes from (0,0) to (2,0): a straight two-hop path of total
	// length 2 and a single long detour edge of length 10.
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(1, 0, 2, 0),
		{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 2, Y: 0},
			Attributes: geometry.Attributes{Length: 10}},
	})

	path, err := g.ShortestPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 0}, true)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, path)
}

func TestShortestPath_ByHops(t *testing.T) {
	// By hop count the direct edge wins even though it is longer.
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(1, 0, 2, 0),
		{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 2, Y: 0},
			Attributes: geometry.Attributes{Length: 10}},
	})

	path, err := g.ShortestPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 0}, false)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}, path)
}

func TestShortestPath_SameNode(t *testing.T) {
	g := BuildGraph([]geometry.Segment{seg(0, 0, 1, 0)})

	path, err := g.ShortestPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 0}, true)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}}, path)
}

func TestShortestPath_Errors(t *testing.T) {
	g := BuildGraph([]geometry.Segment{
		seg(0, 0, 1, 0),
		seg(10, 10, 11, 11),
	})

	_, err := g.ShortestPath(geometry.Point{X: 99, Y: 99}, geometry.Point{X: 1, Y: 0}, true)
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = g.ShortestPath(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 10}, true)
	assert.ErrorIs(t, err, ErrNoPath)
}
