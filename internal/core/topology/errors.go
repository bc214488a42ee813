// Package topology defines domain-specific errors
package topology

import "errors"

// Domain errors - defined once, used everywhere
var (
	ErrEmptyComponent = errors.New("component has no nodes")
	ErrNodeNotFound   = errors.New("node not found in graph")
	ErrNoPath         = errors.New("no path between nodes")
)
