// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/google/uuid"
)

// Registry is the discoverable group of portal surfaces in a scene.
// Enumeration order is the order of Add, raycast distance ties resolve
// to the earlier surface.
type Registry struct {
	order []*Surface
	byID  map[uuid.UUID]*Surface
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[uuid.UUID]*Surface)}
}

func (r *Registry) Add(s *Surface) {
	if _, ok := r.byID[s.id]; ok {
		return
	}
	r.byID[s.id] = s
	r.order = append(r.order, s)
}

func (r *Registry) Remove(s *Surface) {
	if _, ok := r.byID[s.id]; !ok {
		return
	}
	delete(r.byID, s.id)
	for i, o := range r.order {
		if o == s {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Get(id uuid.UUID) (*Surface, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All returns every registered surface in Add order.
func (r *Registry) All() []*Surface {
	return r.order
}

// Active returns the surfaces taking part in raycasts, in Add order.
func (r *Registry) Active() []*Surface {
	var out []*Surface
	for _, s := range r.order {
		if s.Active() {
			out = append(out, s)
		}
	}
	return out
}
