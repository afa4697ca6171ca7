// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"goportal/cvars"
)

// ZoneOptions tune one zone. Zero values fall back to the registered
// cvar defaults.
type ZoneOptions struct {
	// ReenableDelay is how long a layer reference outlives the body
	// leaving the zone.
	ReenableDelay float32
}

// Zone is one suppressor volume, usually sized around a portal
// surface. The physics host reports overlap begin and end through
// Enter and Leave, the timers run inside System.Update.
type Zone struct {
	sys     *System
	name    string
	opts    ZoneOptions
	records map[Masked]*record
}

func (sys *System) NewZone(name string, opts ZoneOptions) *Zone {
	z := &Zone{sys: sys, name: name, opts: opts, records: make(map[Masked]*record)}
	sys.zones = append(sys.zones, z)
	return z
}

func (z *Zone) Name() string {
	return z.name
}

// Tracking is the number of bodies this zone holds records for.
func (z *Zone) Tracking() int {
	return len(z.records)
}

func (z *Zone) delay() float32 {
	if z.opts.ReenableDelay > 0 {
		return z.opts.ReenableDelay
	}
	return cvars.CollisionReenableDelay.Value()
}

// Enter records b inside this zone and takes a reference on every
// requested layer that is either still enabled or already held by
// another zone. A layer the host disabled on its own is left alone. A
// body coming back before its countdown expired keeps its references.
func (z *Zone) Enter(b Masked) {
	if b == nil || b.Disposed() {
		return
	}
	if rec, ok := z.records[b]; ok {
		rec.left = false
		rec.reenableIn = z.delay()
		return
	}
	rec := &record{body: b, reenableIn: z.delay()}
	z.records[b] = rec
	for _, layer := range b.DisableLayers() {
		if holds(rec, layer) {
			continue
		}
		if !b.LayerEnabled(layer) && z.sys.Held(b, layer) == 0 {
			continue
		}
		z.sys.acquire(rec, layer)
	}
}

// Leave starts the re-enable countdown for b's record.
func (z *Zone) Leave(b Masked) {
	if b == nil {
		return
	}
	rec, ok := z.records[b]
	if !ok {
		return
	}
	rec.left = true
	rec.reenableIn = z.delay()
}

func holds(rec *record, layer int) bool {
	for _, l := range rec.layers {
		if l == layer {
			return true
		}
	}
	return false
}
