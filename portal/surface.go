// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/tanema/gween"

	"goportal/conlog"
	"goportal/cvars"
	"goportal/transform"
)

// Bounds is the surface rectangle in the local XY plane at Z=0.
type Bounds struct {
	Min, Max mgl32.Vec2
}

// BoundsAround returns bounds centered on the local origin.
func BoundsAround(halfWidth, halfHeight float32) Bounds {
	return Bounds{
		Min: mgl32.Vec2{-halfWidth, -halfHeight},
		Max: mgl32.Vec2{halfWidth, halfHeight},
	}
}

func (b Bounds) Contains(x, y float32) bool {
	return x >= b.Min[0] && x <= b.Max[0] &&
		y >= b.Min[1] && y <= b.Max[1]
}

// Options are the per-surface tuning values. Zero values fall back to
// the registered cvar defaults, a zero ExitScale means 1.
type Options struct {
	// ExitScale resizes travelers and view rays from entrance to exit.
	ExitScale float32
	// NearClipSubtract pulls the exit camera near plane closer to it.
	NearClipSubtract float32
	// ViewHeight is the vertical resolution of the exit viewport.
	ViewHeight int
	// DisableDistance ends render service beyond this range.
	DisableDistance float32
	// FadeRange is the band before DisableDistance blending FadeColor in.
	FadeRange float32
	// FadeTime animates render on/off flips.
	FadeTime  float32
	FadeColor mgl32.Vec3
}

// Surface is one end of a portal pairing. The local front looks along
// +Z. Pairing is asymmetric, a surface may be exit only, and a surface
// without an exit performs no transform service. Surfaces are driven
// from the host frame loop and are not safe for concurrent use.
type Surface struct {
	id      uuid.UUID
	name    string
	node    *transform.Node
	bounds  Bounds
	exit    *Surface
	opts    Options
	enabled bool

	renderOn bool
	fadeVal  float32
	fade     *gween.Tween
}

// NewSurface builds a surface around node. A nil node is a
// configuration error, the surface logs it and stays inert.
func NewSurface(name string, node *transform.Node, bounds Bounds, opts Options) *Surface {
	s := &Surface{
		id:       uuid.New(),
		name:     name,
		node:     node,
		bounds:   bounds,
		opts:     opts,
		enabled:  true,
		renderOn: true,
		fadeVal:  1,
	}
	if node == nil {
		conlog.Printf("portal %s: no transform node, surface is inert\n", name)
	} else if !node.UniformScaledAncestors() {
		conlog.Printf("portal %s: non uniform scale in the parent chain, mapping is degraded\n", name)
	}
	return s
}

// SetExit fixes the pairing for the surface's lifetime. A second call
// logs and keeps the first exit.
func (s *Surface) SetExit(exit *Surface) {
	if s.exit != nil {
		conlog.Printf("portal %s: exit pairing already set\n", s.name)
		return
	}
	s.exit = exit
}

func (s *Surface) ID() uuid.UUID {
	return s.id
}

func (s *Surface) Name() string {
	return s.name
}

func (s *Surface) Exit() *Surface {
	return s.exit
}

func (s *Surface) Node() *transform.Node {
	return s.node
}

func (s *Surface) Bounds() Bounds {
	return s.bounds
}

func (s *Surface) Options() Options {
	return s.opts
}

func (s *Surface) Enabled() bool {
	return s.enabled
}

func (s *Surface) SetEnabled(e bool) {
	s.enabled = e
}

// CanMap reports whether the surface offers transform service.
func (s *Surface) CanMap() bool {
	return s.node != nil && s.exit != nil && s.exit.node != nil
}

// Active reports whether the surface takes part in raycasts.
func (s *Surface) Active() bool {
	return s.enabled && s.CanMap()
}

// World is the surface pose in the root frame. An inert surface sits at
// identity.
func (s *Surface) World() transform.Pose {
	if s.node == nil {
		return transform.Identity()
	}
	return s.node.World()
}

// Front is the world-space unit normal of the visible side.
func (s *Surface) Front() mgl32.Vec3 {
	return s.World().Forward()
}

// WorldCorners returns the rectangle corners in the root frame.
func (s *Surface) WorldCorners() [4]mgl32.Vec3 {
	w := s.World()
	b := s.bounds
	return [4]mgl32.Vec3{
		w.Apply(mgl32.Vec3{b.Min[0], b.Min[1], 0}),
		w.Apply(mgl32.Vec3{b.Max[0], b.Min[1], 0}),
		w.Apply(mgl32.Vec3{b.Max[0], b.Max[1], 0}),
		w.Apply(mgl32.Vec3{b.Min[0], b.Max[1], 0}),
	}
}

func (s *Surface) exitScale() float32 {
	if s.opts.ExitScale == 0 {
		return 1
	}
	return s.opts.ExitScale
}

func (s *Surface) disableDistance() float32 {
	if s.opts.DisableDistance > 0 {
		return s.opts.DisableDistance
	}
	return cvars.PortalDisableDistance.Value()
}

func (s *Surface) fadeTime() float32 {
	if s.opts.FadeTime > 0 {
		return s.opts.FadeTime
	}
	return cvars.PortalFadeTime.Value()
}

func (s *Surface) viewHeight() int {
	if s.opts.ViewHeight > 0 {
		return s.opts.ViewHeight
	}
	return int(cvars.PortalViewHeight.Value())
}
