// SPDX-License-Identifier: GPL-2.0-or-later

package transform

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const e = 1e-5

func nearV(t *testing.T, got, want mgl32.Vec3) {
	t.Helper()
	if got.Sub(want).Len() > e {
		t.Errorf("got %v want %v", got, want)
	}
}

func near(t *testing.T, got, want float32) {
	t.Helper()
	if math32.Abs(got-want) > e {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestApply(t *testing.T) {
	p := Pose{
		Pos:   mgl32.Vec3{1, 0, 0},
		Rot:   mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}),
		Scale: mgl32.Vec3{2, 2, 2},
	}
	nearV(t, p.Apply(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{3, 0, 0})
	nearV(t, p.ApplyDir(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{2, 0, 0})
}

func TestToLocalRoundTrip(t *testing.T) {
	p := Pose{
		Pos:   mgl32.Vec3{4, -2, 7},
		Rot:   mgl32.QuatRotate(0.7, mgl32.Vec3{1, 2, 3}.Normalize()),
		Scale: mgl32.Vec3{2, 0.5, 3},
	}
	v := mgl32.Vec3{-1, 5, 0.25}
	nearV(t, p.ToLocal(p.Apply(v)), v)
	nearV(t, p.Apply(p.ToLocal(v)), v)
	d := mgl32.Vec3{0.3, -4, 1}
	nearV(t, p.DirToLocal(p.ApplyDir(d)), d)
}

func TestMul(t *testing.T) {
	parent := Pose{
		Pos:   mgl32.Vec3{1, 0, 0},
		Rot:   mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}),
		Scale: mgl32.Vec3{2, 2, 2},
	}
	child := At(mgl32.Vec3{0, 0, 1})
	world := parent.Mul(child)
	nearV(t, world.Pos, mgl32.Vec3{3, 0, 0})
	nearV(t, world.Scale, mgl32.Vec3{2, 2, 2})
	// composed pose maps points like the chained poses do
	v := mgl32.Vec3{0.5, 1, -2}
	nearV(t, world.Apply(v), parent.Apply(child.Apply(v)))
}

func TestBasis(t *testing.T) {
	p := Identity()
	nearV(t, p.Forward(), mgl32.Vec3{0, 0, 1})
	nearV(t, p.Up(), mgl32.Vec3{0, 1, 0})
	nearV(t, p.Right(), mgl32.Vec3{1, 0, 0})

	r := At(mgl32.Vec3{})
	r.Rot = mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})
	nearV(t, r.Forward(), mgl32.Vec3{1, 0, 0})
	near(t, r.Forward().Len(), 1)
}

func TestApproxEqualQuatSign(t *testing.T) {
	p := At(mgl32.Vec3{1, 2, 3})
	p.Rot = mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0})
	q := p
	q.Rot = mgl32.Quat{W: -p.Rot.W, V: p.Rot.V.Mul(-1)}
	if !p.ApproxEqual(q, e) {
		t.Error("q and -q describe the same orientation")
	}
	q.Pos = q.Pos.Add(mgl32.Vec3{0.01, 0, 0})
	if p.ApproxEqual(q, e) {
		t.Error("moved pose compared equal")
	}
}

func TestUniformScale(t *testing.T) {
	p := Identity()
	if !p.UniformScale() {
		t.Error("identity scale is uniform")
	}
	p.Scale = mgl32.Vec3{1, 2, 1}
	if p.UniformScale() {
		t.Error("1,2,1 is not uniform")
	}
}
