package netmend

import (
	"context"

	memory "github.com/netmend/netmend/internal/adapters/repository/memory"
	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/internal/app/services"
	"github.com/netmend/netmend/internal/app/usecases"
	"github.com/netmend/netmend/internal/core/geometry"
	"github.com/netmend/netmend/internal/core/network"
)

// Re-export core geometry types for convenience
type Point = geometry.Point
type Line = geometry.Line
type Segment = geometry.Segment
type Attributes = geometry.Attributes

// Repair is the pure entry point: it returns the input segments plus
// any bridges needed to make the collection graph-connected. It has no
// side effects and touches no files or network.
func Repair(lines []Line) ([]Line, error) {
	repairer := usecases.NewDefaultRepairer()
	resp, err := repairer.Repair(context.Background(), &dto.RepairRequest{Lines: lines})
	if err != nil {
		return nil, err
	}
	return append(resp.Segments, resp.Bridges...), nil
}

// Runtime is a façade wiring the repairer to a network store, so
// callers can repair and persist without importing internal packages.
// The default runtime keeps networks in memory and is suitable for
// local usage and tests.
type Runtime struct {
	repairer usecases.NetworkRepairer
	networks *services.NetworkService
}

// NewRuntime constructs a default runtime with in-memory storage.
func NewRuntime() *Runtime {
	store := memory.NewNetworkStore()
	return NewRuntimeWithStore(store)
}

// NewRuntimeWithStore constructs a runtime over the given store.
func NewRuntimeWithStore(store network.Store) *Runtime {
	repairer := usecases.NewDefaultRepairer()
	return &Runtime{
		repairer: repairer,
		networks: services.NewNetworkService(store, repairer),
	}
}

// Repair runs a repair request without persisting anything.
func (rt *Runtime) Repair(ctx context.Context, req *dto.RepairRequest) (*dto.RepairResponse, error) {
	return rt.repairer.Repair(ctx, req)
}

// RepairNetwork loads a stored network, repairs it, and saves the
// augmented result back under the same ID.
func (rt *Runtime) RepairNetwork(ctx context.Context, id string) (*network.Network, error) {
	return rt.networks.RepairStored(ctx, id)
}

// SaveNetwork persists a network.
func (rt *Runtime) SaveNetwork(ctx context.Context, n *network.Network) error {
	return rt.networks.Save(ctx, n)
}

// LoadNetwork retrieves a network by ID.
func (rt *Runtime) LoadNetwork(ctx context.Context, id string) (*network.Network, error) {
	return rt.networks.Load(ctx, id)
}
