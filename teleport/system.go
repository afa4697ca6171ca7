// SPDX-License-Identifier: GPL-2.0-or-later

package teleport

import (
	"github.com/tanema/gween"

	"goportal/portal"
)

// record tracks one object currently crossing a portal boundary. At
// most one record exists per object, the owning trigger is the only
// one that mutates it.
type record struct {
	body  Body
	clone Clone
	kind  physicsKind
	owner *Trigger

	// last sampled position along the surface normal, unset until the
	// first sample
	zSample  float32
	zSampled bool

	left       bool
	teleported bool
	keepAlive  float32
	fade       *gween.Tween
	alpha      float32
}

func (r *record) hideClone() {
	if r.clone != nil {
		r.clone.SetVisible(false)
	}
}

// System owns the teleport triggers of one simulated world and the
// object to crossing record index they share. All work happens inside
// Update, single threaded, driven by the host frame loop. Update must
// run after the frame's camera and body poses have settled.
type System struct {
	triggers []*Trigger
	records  map[Body]*record
}

func NewSystem() *System {
	return &System{records: make(map[Body]*record)}
}

// Tracking is the number of live crossing records.
func (sys *System) Tracking() int {
	return len(sys.records)
}

// OwnerOf reports which trigger currently owns the object's crossing.
func (sys *System) OwnerOf(b Body) (*Trigger, bool) {
	rec, ok := sys.records[b]
	if !ok {
		return nil, false
	}
	return rec.owner, true
}

// Update runs the per-tick sweep: prune disposed objects, then let
// each record's owning trigger advance it.
func (sys *System) Update(dt float32) {
	for body, rec := range sys.records {
		if body.Disposed() {
			rec.hideClone()
			delete(sys.records, body)
			continue
		}
		rec.owner.tick(rec, dt)
	}
}

func (sys *System) triggerFor(s *portal.Surface) *Trigger {
	if s == nil {
		return nil
	}
	for _, t := range sys.triggers {
		if t.surface == s {
			return t
		}
	}
	return nil
}

func (sys *System) drop(rec *record) {
	rec.hideClone()
	delete(sys.records, rec.body)
}
