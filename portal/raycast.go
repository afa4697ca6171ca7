// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const parallelEpsilon = 1e-7

// RayHandler sees one ray segment: its origin and unit direction, the
// distance to the portal ending it (+Inf when the ray escapes), the
// distance accumulated before the segment and the recursion index.
// Returning true reports the segment blocked by the caller's own scene
// and stops the walk.
type RayHandler func(origin, dir mgl32.Vec3, segment, total float32, depth int) bool

// Raycast walks a ray through the given surfaces. Each segment finds
// the nearest eligible surface, reports to handler and redirects
// through the pairing, ignoring the hit surface's exit on the next
// segment. The handler runs at least once. The walk ends on a blocked
// segment, a miss, the total distance reaching maxDistance, or the
// recursion index reaching maxRecursions. With ignoreBackside set,
// hits against a surface's back face are not eligible.
func Raycast(surfaces []*Surface, origin, dir mgl32.Vec3, handler RayHandler, maxDistance float32, maxRecursions int, ignoreBackside bool) {
	inf := math32.Inf(1)
	if dir.Len() == 0 {
		handler(origin, dir, inf, 0, 0)
		return
	}
	dir = dir.Normalize()
	var ignore *Surface
	total := float32(0)
	for depth := 0; ; depth++ {
		hit, point, dist := nearest(surfaces, origin, dir, ignore, ignoreBackside)
		seg := inf
		if hit != nil {
			seg = dist
		}
		if handler(origin, dir, seg, total, depth) {
			return
		}
		if hit == nil {
			return
		}
		total += seg
		if total >= maxDistance || depth >= maxRecursions {
			return
		}
		origin = hit.PositionToExit(point)
		dir = hit.DirectionToExit(dir).Normalize()
		ignore = hit.Exit()
	}
}

// Raycast walks a ray through the registry's active surfaces.
func (r *Registry) Raycast(origin, dir mgl32.Vec3, handler RayHandler, maxDistance float32, maxRecursions int, ignoreBackside bool) {
	Raycast(r.order, origin, dir, handler, maxDistance, maxRecursions, ignoreBackside)
}

// nearest picks the closest eligible hit by squared world distance,
// distance ties keep the first enumerated surface.
func nearest(surfaces []*Surface, origin, dir mgl32.Vec3, ignore *Surface, ignoreBackside bool) (*Surface, mgl32.Vec3, float32) {
	var (
		best  *Surface
		bestP mgl32.Vec3
		bestD = math32.Inf(1)
	)
	for _, s := range surfaces {
		if s == ignore || !s.Active() {
			continue
		}
		w := s.World()
		lo := w.ToLocal(origin)
		ld := w.DirToLocal(dir)
		if math32.Abs(ld[2]) < parallelEpsilon {
			continue
		}
		if ignoreBackside && ld[2] > 0 {
			continue
		}
		t := -lo[2] / ld[2]
		if t < 0 {
			continue
		}
		hx := lo[0] + t*ld[0]
		hy := lo[1] + t*ld[1]
		if !s.bounds.Contains(hx, hy) {
			continue
		}
		p := w.Apply(mgl32.Vec3{hx, hy, 0})
		d := p.Sub(origin).LenSqr()
		if d < bestD {
			best, bestP, bestD = s, p, d
		}
	}
	if best == nil {
		return nil, mgl32.Vec3{}, 0
	}
	return best, bestP, math32.Sqrt(bestD)
}
