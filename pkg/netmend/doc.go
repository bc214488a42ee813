// Package netmend provides a minimal public façade for repairing the
// connectivity of line networks without importing internal packages.
// It re-exports the core geometry types for convenience and exposes a
// Runtime with simple methods to repair and persist networks.
package netmend
