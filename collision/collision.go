// SPDX-License-Identifier: GPL-2.0-or-later

// Package collision suppresses collision layers for bodies inside
// portal zones. Overlapping zones share plain per-layer reference
// counts, so the first zone switches a layer off and the last one to
// time out switches it back on.
package collision

// Masked is the minimum a suppressor zone needs from a scene object:
// the layers it wants silenced while crossing, and switchable layer
// state. Disposed reports the host-side object as gone, its records
// are then pruned.
type Masked interface {
	DisableLayers() []int
	LayerEnabled(layer int) bool
	SetLayerEnabled(layer int, enabled bool)
	Disposed() bool
}
