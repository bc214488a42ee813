package metrics

import (
	"expvar"
)

// Store metrics (counters) using expvar maps keyed by backend name.
var (
	storeSaves = expvar.NewMap("netmend_store_saves_total")
	storeLoads = expvar.NewMap("netmend_store_loads_total")
)

// Repair pipeline metrics.
var (
	repairsTotal          = new(expvar.Int)
	bridgesTotal          = new(expvar.Int)
	componentsMergedTotal = new(expvar.Int)
)

func init() {
	expvar.Publish("netmend_repairs_total", repairsTotal)
	expvar.Publish("netmend_bridges_total", bridgesTotal)
	expvar.Publish("netmend_components_merged_total", componentsMergedTotal)
}

// Repair helpers
func IncRepairs()                 { repairsTotal.Add(1) }
func AddBridges(n int64)          { bridgesTotal.Add(n) }
func AddComponentsMerged(n int64) { componentsMergedTotal.Add(n) }

// Store helpers
func IncStoreSaves(backend string) { storeSaves.Add(backend, 1) }
func IncStoreLoads(backend string) { storeLoads.Add(backend, 1) }
