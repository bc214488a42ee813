package main

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// handleMetrics renders expvar-published metrics in Prometheus text
// exposition format. Known netmend metrics get type and help metadata;
// other expvar vars fall back to a minimal conversion.
func (s *server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	type meta struct {
		typ, help string
		isMap     bool
		label     string
	}
	metas := map[string]meta{
		"netmend_repairs_total":           {typ: "counter", help: "Repair runs completed"},
		"netmend_bridges_total":           {typ: "counter", help: "Bridge segments synthesized"},
		"netmend_components_merged_total": {typ: "counter", help: "Disjoint components merged"},
		"netmend_store_saves_total":       {typ: "counter", help: "Network store saves", isMap: true, label: "backend"},
		"netmend_store_loads_total":       {typ: "counter", help: "Network store loads", isMap: true, label: "backend"},
	}

	varNames := make([]string, 0, 16)
	expvar.Do(func(kv expvar.KeyValue) {
		if strings.HasPrefix(kv.Key, "netmend_") {
			varNames = append(varNames, kv.Key)
		}
	})
	sort.Strings(varNames)

	for _, name := range varNames {
		v := expvar.Get(name)
		m, known := metas[name]
		if known {
			fmt.Fprintf(w, "# HELP %s %s\n", name, m.help)
			fmt.Fprintf(w, "# TYPE %s %s\n", name, m.typ)
		}
		if mv, ok := v.(*expvar.Map); ok {
			label := m.label
			if label == "" {
				label = "key"
			}
			mv.Do(func(kv expvar.KeyValue) {
				fmt.Fprintf(w, "%s{%s=%q} %s\n", name, label, kv.Key, kv.Value.String())
			})
			continue
		}
		fmt.Fprintf(w, "%s %s\n", name, v.String())
	}
}
