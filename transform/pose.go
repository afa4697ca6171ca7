// SPDX-License-Identifier: GPL-2.0-or-later

package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a position, orientation and scale in some frame.
type Pose struct {
	Pos   mgl32.Vec3
	Rot   mgl32.Quat
	Scale mgl32.Vec3
}

func Identity() Pose {
	return Pose{
		Rot:   mgl32.QuatIdent(),
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

// At returns an identity pose moved to pos.
func At(pos mgl32.Vec3) Pose {
	p := Identity()
	p.Pos = pos
	return p
}

// MulV returns the component-wise product of a and b.
func MulV(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivV returns the component-wise quotient of a and b.
func DivV(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Apply maps a point from p's local frame to the outer frame.
func (p Pose) Apply(v mgl32.Vec3) mgl32.Vec3 {
	return p.Pos.Add(p.Rot.Rotate(MulV(p.Scale, v)))
}

// ApplyDir maps a free vector from p's local frame to the outer frame.
// Translation does not apply, scale does.
func (p Pose) ApplyDir(v mgl32.Vec3) mgl32.Vec3 {
	return p.Rot.Rotate(MulV(p.Scale, v))
}

// ToLocal maps a point from the outer frame into p's local frame.
func (p Pose) ToLocal(v mgl32.Vec3) mgl32.Vec3 {
	return DivV(p.Rot.Inverse().Rotate(v.Sub(p.Pos)), p.Scale)
}

// DirToLocal maps a free vector from the outer frame into p's local frame.
func (p Pose) DirToLocal(v mgl32.Vec3) mgl32.Vec3 {
	return DivV(p.Rot.Inverse().Rotate(v), p.Scale)
}

// Mul composes p with a child pose c, the usual scene graph composition.
// Exact when p's scale is uniform.
func (p Pose) Mul(c Pose) Pose {
	return Pose{
		Pos:   p.Apply(c.Pos),
		Rot:   p.Rot.Mul(c.Rot).Normalize(),
		Scale: MulV(p.Scale, c.Scale),
	}
}

// Forward is the local +Z axis in the outer frame, unit length.
func (p Pose) Forward() mgl32.Vec3 {
	return p.Rot.Rotate(mgl32.Vec3{0, 0, 1})
}

// Up is the local +Y axis in the outer frame, unit length.
func (p Pose) Up() mgl32.Vec3 {
	return p.Rot.Rotate(mgl32.Vec3{0, 1, 0})
}

// Right is the local +X axis in the outer frame, unit length.
func (p Pose) Right() mgl32.Vec3 {
	return p.Rot.Rotate(mgl32.Vec3{1, 0, 0})
}

// UniformScale reports whether all scale components are equal.
func (p Pose) UniformScale() bool {
	return p.Scale[0] == p.Scale[1] && p.Scale[1] == p.Scale[2]
}

// ApproxEqual compares poses within epsilon. Orientations are compared
// as rotations, q and -q are equal.
func (p Pose) ApproxEqual(o Pose, epsilon float32) bool {
	if !p.Pos.ApproxEqualThreshold(o.Pos, epsilon) {
		return false
	}
	if !p.Scale.ApproxEqualThreshold(o.Scale, epsilon) {
		return false
	}
	d := math32.Abs(p.Rot.Normalize().Dot(o.Rot.Normalize()))
	return d > 1-epsilon
}
