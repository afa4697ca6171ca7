// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"goportal/conlog"
)

// record tracks one body inside one zone: the layers this zone holds a
// reference on, and the countdown once the body has left.
type record struct {
	body       Masked
	layers     []int
	left       bool
	reenableIn float32
}

// System owns the suppressor zones of one simulated world and the
// per-body layer counters they share. A layer stays disabled while any
// zone holds a reference on it. All work happens inside Update, single
// threaded, driven by the host frame loop.
type System struct {
	zones []*Zone
	held  map[Masked]map[int]int
}

func NewSystem() *System {
	return &System{held: make(map[Masked]map[int]int)}
}

// Held reports how many zone references currently keep layer disabled
// on b.
func (sys *System) Held(b Masked, layer int) int {
	return sys.held[b][layer]
}

// Update runs the per-tick sweep over every zone: prune disposed
// bodies, count left records down and release their layers at zero.
func (sys *System) Update(dt float32) {
	for _, z := range sys.zones {
		for body, rec := range z.records {
			if body.Disposed() {
				sys.release(rec, false)
				delete(z.records, body)
				continue
			}
			if !rec.left {
				continue
			}
			rec.reenableIn -= dt
			if rec.reenableIn <= 0 {
				sys.release(rec, true)
				delete(z.records, body)
			}
		}
	}
}

// acquire adds one reference on layer for rec's body. The first
// reference switches the physical layer off.
func (sys *System) acquire(rec *record, layer int) {
	counters := sys.held[rec.body]
	if counters == nil {
		counters = make(map[int]int)
		sys.held[rec.body] = counters
	}
	counters[layer]++
	if counters[layer] == 1 {
		rec.body.SetLayerEnabled(layer, false)
		conlog.DPrintf("collision: layer %d disabled\n", layer)
	}
	rec.layers = append(rec.layers, layer)
}

// release drops every reference rec holds. The last reference on a
// layer switches it back on; a disposed body has its counters drained
// but is never called into.
func (sys *System) release(rec *record, physical bool) {
	counters := sys.held[rec.body]
	for _, layer := range rec.layers {
		counters[layer]--
		if counters[layer] > 0 {
			continue
		}
		delete(counters, layer)
		if physical {
			rec.body.SetLayerEnabled(layer, true)
			conlog.DPrintf("collision: layer %d re-enabled\n", layer)
		}
	}
	if len(counters) == 0 {
		delete(sys.held, rec.body)
	}
	rec.layers = rec.layers[:0]
}
