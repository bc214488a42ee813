package netmend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/network"
)

func TestRepair_Pure(t *testing.T) {
	lines := []Line{
		{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{Points: []Point{{X: 10, Y: 0}, {X: 11, Y: 0}}},
	}

	out, err := Repair(lines)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, geometry.CategoryBridge, out[2].Attributes.Category)
}

func TestRepair_Empty(t *testing.T) {
	out, err := Repair(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRuntime_RepairRequest(t *testing.T) {
	rt := NewRuntime()

	resp, err := rt.Repair(context.Background(), &dto.RepairRequest{
		Lines: []Line{
			{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
			{Points: []Point{{X: 5, Y: 5}, {X: 6, Y: 6}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, dto.RepairStatusCompleted, resp.Status)
	assert.Len(t, resp.Bridges, 1)
}

func TestRuntime_NetworkLifecycle(t *testing.T) {
	ctx := context.Background()
	rt := NewRuntime()

	n := &network.Network{
		ID:   "net-1",
		Name: "city grid",
		Lines: []Line{
			{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}}},
			{Points: []Point{{X: 10, Y: 0}, {X: 11, Y: 0}}},
		},
	}
	require.NoError(t, rt.SaveNetwork(ctx, n))

	repaired, err := rt.RepairNetwork(ctx, "net-1")
	require.NoError(t, err)
	assert.True(t, repaired.Metadata.Repaired)
	assert.Len(t, repaired.Bridges, 1)

	got, err := rt.LoadNetwork(ctx, "net-1")
	require.NoError(t, err)
	assert.Len(t, got.AllLines(), 3)
}

func TestRuntime_LoadMissing(t *testing.T) {
	_, err := NewRuntime().LoadNetwork(context.Background(), "absent")
	assert.ErrorIs(t, err, network.ErrNetworkNotFound)
}
