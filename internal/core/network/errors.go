// Package network defines domain-specific errors
package network

import "errors"

// Domain errors - defined once, used everywhere
var (
	ErrInvalidNetworkID   = errors.New("invalid network ID")
	ErrInvalidNetworkName = errors.New("invalid network name")
	ErrNetworkNotFound    = errors.New("network not found")
	ErrNilNetwork         = errors.New("network cannot be nil")

	ErrInvalidLimit  = errors.New("limit cannot be negative")
	ErrInvalidOffset = errors.New("offset cannot be negative")
)
