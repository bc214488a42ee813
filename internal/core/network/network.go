// Package network provides the persisted network entity and its store
// interfaces, following Clean Architecture principles with zero
// external dependencies.
package network

import (
	"time"

	"github.com/netmend/netmend/internal/core/geometry"
)

// Network is a named collection of line geometries plus the bridges
// synthesized to make it connected. It is the unit of persistence: a
// repair run reads one network and writes back the augmented one.
type Network struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Lines     []geometry.Line `json:"lines"`
	Bridges   []geometry.Line `json:"bridges,omitempty"`
	Metadata  Metadata        `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Metadata carries bookkeeping about a stored network.
type Metadata struct {
	Source     string   `json:"source,omitempty"`
	Components int      `json:"components,omitempty"`
	Repaired   bool     `json:"repaired"`
	Tags       []string `json:"tags,omitempty"`
}

// Validate ensures network integrity
func (n *Network) Validate() error {
	if n.ID == "" {
		return ErrInvalidNetworkID
	}
	if n.Name == "" {
		return ErrInvalidNetworkName
	}
	for i := range n.Lines {
		if err := n.Lines[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AllLines returns original lines followed by bridges.
func (n *Network) AllLines() []geometry.Line {
	out := make([]geometry.Line, 0, len(n.Lines)+len(n.Bridges))
	out = append(out, n.Lines...)
	return append(out, n.Bridges...)
}
