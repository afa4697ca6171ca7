// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"goportal/transform"
)

// Traversal always turns the traveler around, a half turn about the
// surface's local up axis. As a linear map that is diag(-1,1,-1).
var flipRot = mgl32.QuatRotate(math32.Pi, mgl32.Vec3{0, 1, 0})

func flipVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-v[0], v[1], -v[2]}
}

// PoseToExit expresses p relative to the entrance, strips the
// entrance's own scale, turns it around, scales by the exit scale
// factor and re-expresses it beyond the exit surface. The exit
// surface's own scale cancels out of the pipeline. A surface without
// an exit returns p unchanged.
func (s *Surface) PoseToExit(p transform.Pose) transform.Pose {
	if !s.CanMap() {
		return p
	}
	ent := s.node.World()
	ext := s.exit.node.World()
	k := s.exitScale()

	lp := flipVec(ent.ToLocal(p.Pos)).Mul(k)
	lr := flipRot.Mul(ent.Rot.Inverse().Mul(p.Rot))
	ls := transform.DivV(p.Scale, ent.Scale).Mul(k)

	return transform.Pose{
		Pos:   ext.Pos.Add(ext.Rot.Rotate(lp)),
		Rot:   ext.Rot.Mul(lr).Normalize(),
		Scale: ls,
	}
}

// PositionToExit maps a bare point. Unlike the pose pipeline the point
// is not turned around, it is mirrored through a sign flip on the exit
// scale vector's X component. On the surface plane both pipelines
// agree.
func (s *Surface) PositionToExit(v mgl32.Vec3) mgl32.Vec3 {
	if !s.CanMap() {
		return v
	}
	ent := s.node.World()
	ext := s.exit.node.World()
	k := s.exitScale()

	l := ent.ToLocal(v)
	l = mgl32.Vec3{-k * l[0], k * l[1], k * l[2]}
	return ext.Pos.Add(ext.Rot.Rotate(l))
}

// DirectionToExit maps a free vector: rotate into the entrance frame,
// unscale, turn around, rescale by the exit scale factor and rotate
// into the exit frame. The result is not normalized, lengths scale by
// the exit scale factor so remapped velocities keep their meaning.
func (s *Surface) DirectionToExit(d mgl32.Vec3) mgl32.Vec3 {
	if !s.CanMap() {
		return d
	}
	ent := s.node.World()
	ext := s.exit.node.World()
	k := s.exitScale()

	l := flipVec(ent.DirToLocal(d)).Mul(k)
	return ext.Rot.Rotate(l)
}
