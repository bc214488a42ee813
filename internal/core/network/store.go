// Package network provides network persistence interfaces
package network

import (
	"context"
	"time"
)

// Store persists networks. Core code depends on this interface; the
// adapters under internal/adapters/repository provide the
// implementations.
type Store interface {
	// Save persists a network, replacing any previous version.
	Save(ctx context.Context, n *Network) error

	// Load retrieves a network by ID.
	Load(ctx context.Context, id string) (*Network, error)

	// List returns networks matching the filter.
	List(ctx context.Context, filter Filter) ([]*Network, error)

	// Delete removes a network by ID.
	Delete(ctx context.Context, id string) error
}

// Filter narrows List queries.
type Filter struct {
	Name     string     `json:"name,omitempty"`
	Repaired *bool      `json:"repaired,omitempty"`
	Limit    int        `json:"limit,omitempty"`
	Offset   int        `json:"offset,omitempty"`
	Since    *time.Time `json:"since,omitempty"`
}

// Validate ensures filter parameters are valid
func (f *Filter) Validate() error {
	if f.Limit < 0 {
		return ErrInvalidLimit
	}
	if f.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}
