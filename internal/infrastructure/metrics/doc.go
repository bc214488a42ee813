// Package metrics exposes expvar-published counters and gauges for the
// repair pipeline and the network stores. It intentionally avoids
// external dependencies and is consumed by the optional netmend-server
// for /debug/vars and /metrics endpoints.
package metrics
