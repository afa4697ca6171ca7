// SPDX-License-Identifier: GPL-2.0-or-later

package teleport

import (
	"github.com/go-gl/mathgl/mgl32"

	"goportal/transform"
)

// Body is the minimum a trigger needs from a scene object. Disposed
// reports the host-side object as gone, its record is then pruned.
type Body interface {
	Pose() transform.Pose
	SetPose(transform.Pose)
	Disposed() bool
}

// RigidBody is a physics-driven body. Its velocities are remapped on
// teleport and its approach is judged by velocity direction.
type RigidBody interface {
	Body
	Velocity() mgl32.Vec3
	SetVelocity(mgl32.Vec3)
	AngularVelocity() mgl32.Vec3
	SetAngularVelocity(mgl32.Vec3)
}

// KinematicBody moves itself with a velocity but carries no angular
// state. Its approach is judged by sampled position.
type KinematicBody interface {
	Body
	Velocity() mgl32.Vec3
	SetVelocity(mgl32.Vec3)
}

// Clone is a visual stand-in previewing the far side of a crossing.
type Clone interface {
	SetPose(transform.Pose)
	SetVisible(bool)
	SetAlpha(float32)
}

// Teleportable is the overlap event payload: the root object to move
// and an optional stand-in to animate. Clone may return nil.
type Teleportable interface {
	Root() Body
	Clone() Clone
}

// physicsKind is resolved once when a record is created, not re-checked
// every tick. A RigidBody also satisfies KinematicBody, so it is
// matched first.
type physicsKind int

const (
	kindStatic physicsKind = iota
	kindRigid
	kindKinematic
)

func kindOf(b Body) physicsKind {
	switch b.(type) {
	case RigidBody:
		return kindRigid
	case KinematicBody:
		return kindKinematic
	}
	return kindStatic
}
