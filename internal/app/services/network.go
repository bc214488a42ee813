// Package services coordinates the repair use case with network
// persistence.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/netmend/netmend/internal/app/dto"
	"github.com/netmend/netmend/internal/app/usecases"
	"github.com/netmend/netmend/internal/core/network"
)

// NetworkService manages stored networks and runs repairs against
// them. It depends on the network.Store abstraction, not on a concrete
// backend.
type NetworkService struct {
	store    network.Store
	repairer usecases.NetworkRepairer
}

// NewNetworkService creates a network service.
func NewNetworkService(store network.Store, repairer usecases.NetworkRepairer) *NetworkService {
	return &NetworkService{store: store, repairer: repairer}
}

// Save validates and persists a network.
func (s *NetworkService) Save(ctx context.Context, n *network.Network) error {
	if n == nil {
		return network.ErrNilNetwork
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.UpdatedAt = time.Now()
	return s.store.Save(ctx, n)
}

// Load retrieves a network by ID.
func (s *NetworkService) Load(ctx context.Context, id string) (*network.Network, error) {
	return s.store.Load(ctx, id)
}

// List returns stored networks matching the filter.
func (s *NetworkService) List(ctx context.Context, filter network.Filter) ([]*network.Network, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.store.List(ctx, filter)
}

// Delete removes a network by ID.
func (s *NetworkService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// RepairStored loads a network, repairs its connectivity, and saves
// the augmented result back under the same ID.
func (s *NetworkService) RepairStored(ctx context.Context, id string) (*network.Network, error) {
	if id == "" {
		return nil, dto.ErrMissingNetwork
	}
	n, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load network: %w", err)
	}

	resp, err := s.repairer.Repair(ctx, &dto.RepairRequest{
		NetworkID: n.ID,
		Lines:     n.Lines,
	})
	if err != nil {
		return nil, fmt.Errorf("repair failed for network %s: %w", id, err)
	}

	n.Bridges = resp.Bridges
	n.Metadata.Components = resp.Stats.ComponentsIn
	n.Metadata.Repaired = true
	n.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to save repaired network: %w", err)
	}
	return n, nil
}
