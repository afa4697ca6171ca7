// SPDX-License-Identifier: GPL-2.0-or-later

package transform

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNodeWorld(t *testing.T) {
	root := NewNode(At(mgl32.Vec3{0, 1, 0}))
	child := NewNode(At(mgl32.Vec3{0, 0, 2}))
	child.SetParent(root)
	nearV(t, child.World().Pos, mgl32.Vec3{0, 1, 2})

	rp := root.Local()
	rp.Rot = mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0})
	root.SetLocal(rp)
	nearV(t, child.World().Pos, mgl32.Vec3{2, 1, 0})
}

func TestNodeReparent(t *testing.T) {
	a := NewNode(At(mgl32.Vec3{10, 0, 0}))
	b := NewNode(At(mgl32.Vec3{-10, 0, 0}))
	n := NewNode(At(mgl32.Vec3{0, 0, 1}))
	n.SetParent(a)
	nearV(t, n.World().Pos, mgl32.Vec3{10, 0, 1})
	n.SetParent(b)
	nearV(t, n.World().Pos, mgl32.Vec3{-10, 0, 1})
	if n.Parent() != b {
		t.Error("Parent() after SetParent")
	}
}

func TestUniformScaledAncestors(t *testing.T) {
	root := NewNode(Identity())
	mid := NewNode(Identity())
	leaf := NewNode(Identity())
	mid.SetParent(root)
	leaf.SetParent(mid)
	if !leaf.UniformScaledAncestors() {
		t.Error("identity chain reported non-uniform")
	}

	lp := leaf.Local()
	lp.Scale = mgl32.Vec3{1, 3, 1}
	leaf.SetLocal(lp)
	if !leaf.UniformScaledAncestors() {
		t.Error("own scale must not count")
	}

	mp := mid.Local()
	mp.Scale = mgl32.Vec3{2, 1, 2}
	mid.SetLocal(mp)
	if leaf.UniformScaledAncestors() {
		t.Error("non-uniform ancestor not reported")
	}
}
