// Package memory provides a thread-safe in-memory network store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/netmend/netmend/internal/core/network"
	"github.com/netmend/netmend/internal/infrastructure/metrics"
)

// NetworkStore implements network.Store with a map behind a RWMutex.
// Suitable for local usage and tests.
type NetworkStore struct {
	mu       sync.RWMutex
	networks map[string]*network.Network
}

// NewNetworkStore creates an empty in-memory store.
func NewNetworkStore() *NetworkStore {
	return &NetworkStore{networks: make(map[string]*network.Network)}
}

// Save persists a network, replacing any previous version.
func (s *NetworkStore) Save(ctx context.Context, n *network.Network) error {
	if n == nil {
		return network.ErrNilNetwork
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks[n.ID] = n
	metrics.IncStoreSaves("memory")
	return nil
}

// Load retrieves a network by ID.
func (s *NetworkStore) Load(ctx context.Context, id string) (*network.Network, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.networks[id]
	if !ok {
		return nil, network.ErrNetworkNotFound
	}
	metrics.IncStoreLoads("memory")
	return n, nil
}

// List returns networks matching the filter, newest first.
func (s *NetworkStore) List(ctx context.Context, filter network.Filter) ([]*network.Network, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*network.Network
	for _, n := range s.networks {
		if filter.Name != "" && n.Name != filter.Name {
			continue
		}
		if filter.Repaired != nil && n.Metadata.Repaired != *filter.Repaired {
			continue
		}
		if filter.Since != nil && !n.UpdatedAt.After(*filter.Since) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Delete removes a network by ID.
func (s *NetworkStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.networks[id]; !ok {
		return network.ErrNetworkNotFound
	}
	delete(s.networks, id)
	return nil
}
