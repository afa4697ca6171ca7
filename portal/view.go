// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"goportal/cvars"
	"goportal/math"
	"goportal/transform"
)

// ExitCameraPose maps the host camera through the pairing, the pose a
// renderer draws the exit view from.
func (s *Surface) ExitCameraPose(viewer transform.Pose) transform.Pose {
	return s.PoseToExit(viewer)
}

// ExitNearClip is the near plane distance for the exit view: the
// mapped camera's distance to the exit plane, pulled in by the
// configured subtract and floored at portal_near_clip_min. Clipping
// there hides everything between the exit camera and its surface.
func (s *Surface) ExitNearClip(viewer transform.Pose) float32 {
	min := cvars.PortalNearClipMin.Value()
	if !s.CanMap() {
		return min
	}
	cam := s.PoseToExit(viewer)
	d := math32.Abs(cam.Pos.Sub(s.exit.World().Pos).Dot(s.exit.Front()))
	d -= s.opts.NearClipSubtract
	if d < min {
		d = min
	}
	return d
}

// ViewportSize sizes the exit viewport: height is the configured
// vertical resolution, width follows the host aspect.
func (s *Surface) ViewportSize(hostWidth, hostHeight int) (int, int) {
	h := s.viewHeight()
	if hostHeight <= 0 {
		return h, h
	}
	w := int(float32(h) * float32(hostWidth) / float32(hostHeight))
	if w < 1 {
		w = 1
	}
	return w, h
}

// UpdateVisibility drives the render on/off signal from viewer
// distance and frustum presence, animating RenderFade across flips.
// Call once per frame after the camera has settled; a nil frustum
// skips the on-screen check.
func (s *Surface) UpdateVisibility(viewer transform.Pose, fr *Frustum, dt float32) {
	want := s.Active()
	if want {
		dist := s.World().Pos.Sub(viewer.Pos).Len()
		want = dist <= s.disableDistance()
	}
	if want && fr != nil {
		want = fr.IntersectsQuad(s.WorldCorners())
	}
	if want != s.renderOn {
		s.renderOn = want
		target := float32(0)
		if want {
			target = 1
		}
		if ft := s.fadeTime(); ft > 0 {
			s.fade = gween.New(s.fadeVal, target, ft, ease.Linear)
		} else {
			s.fadeVal = target
			s.fade = nil
		}
	}
	if s.fade != nil {
		v, done := s.fade.Update(dt)
		s.fadeVal = v
		if done {
			s.fade = nil
		}
	}
}

// RenderOn reports the current visibility decision.
func (s *Surface) RenderOn() bool {
	return s.renderOn
}

// RenderFade is the animated render weight in [0,1]. A host keeps
// drawing while it is above zero.
func (s *Surface) RenderFade() float32 {
	return s.fadeVal
}

// FadeColorAt returns the configured fade color and its blend weight
// at the given viewer distance. The weight ramps from 0 to 1 across
// FadeRange ending at the disable distance.
func (s *Surface) FadeColorAt(dist float32) (mgl32.Vec3, float32) {
	dd := s.disableDistance()
	fr := s.opts.FadeRange
	if fr <= 0 {
		if dist >= dd {
			return s.opts.FadeColor, 1
		}
		return s.opts.FadeColor, 0
	}
	t := math.Clamp01((dist - (dd - fr)) / fr)
	return s.opts.FadeColor, t
}
