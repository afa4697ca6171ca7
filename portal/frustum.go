// SPDX-License-Identifier: GPL-2.0-or-later

package portal

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane is Ax+By+Cz+D=0 with (A,B,C) the normal.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Mul(1 / l)
	p.D /= l
}

// Distance is the signed distance to a point, positive on the normal
// side.
func (p Plane) Distance(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.D
}

// Frustum is the six view planes with normals pointing inward, ordered
// left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the planes from a view-projection matrix
// the Gribb/Hartmann way. mgl32 matrices are column major, row i
// element j sits at m[i+j*4].
func FrustumFromMatrix(m mgl32.Mat4) Frustum {
	var f Frustum
	f.Planes[0] = Plane{Normal: mgl32.Vec3{m[3] + m[0], m[7] + m[4], m[11] + m[8]}, D: m[15] + m[12]}
	f.Planes[1] = Plane{Normal: mgl32.Vec3{m[3] - m[0], m[7] - m[4], m[11] - m[8]}, D: m[15] - m[12]}
	f.Planes[2] = Plane{Normal: mgl32.Vec3{m[3] + m[1], m[7] + m[5], m[11] + m[9]}, D: m[15] + m[13]}
	f.Planes[3] = Plane{Normal: mgl32.Vec3{m[3] - m[1], m[7] - m[5], m[11] - m[9]}, D: m[15] - m[13]}
	f.Planes[4] = Plane{Normal: mgl32.Vec3{m[3] + m[2], m[7] + m[6], m[11] + m[10]}, D: m[15] + m[14]}
	f.Planes[5] = Plane{Normal: mgl32.Vec3{m[3] - m[2], m[7] - m[6], m[11] - m[10]}, D: m[15] - m[14]}
	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// ContainsPoint reports whether v is inside all six planes.
func (f *Frustum) ContainsPoint(v mgl32.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].Distance(v) < 0 {
			return false
		}
	}
	return true
}

// IntersectsQuad conservatively reports whether a quad given by its
// corners touches the frustum: it is out only when all corners sit
// outside one plane.
func (f *Frustum) IntersectsQuad(c [4]mgl32.Vec3) bool {
	for i := range f.Planes {
		out := 0
		for _, v := range c {
			if f.Planes[i].Distance(v) < 0 {
				out++
			}
		}
		if out == 4 {
			return false
		}
	}
	return true
}
