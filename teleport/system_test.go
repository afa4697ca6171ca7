// SPDX-License-Identifier: GPL-2.0-or-later

package teleport

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"goportal/portal"
	"goportal/transform"
)

func TestHandOffBetweenTriggers(t *testing.T) {
	sys, ta, _, _, _ := corridor()
	c := portal.NewSurface("c", transform.NewNode(transform.Pose{
		Pos:   mgl32.Vec3{50, 0, 0},
		Rot:   mgl32.QuatRotate(math32.Pi, mgl32.Vec3{0, 1, 0}),
		Scale: mgl32.Vec3{1, 1, 1},
	}), portal.BoundsAround(1, 1), portal.Options{})
	d := portal.NewSurface("d", transform.NewNode(transform.At(mgl32.Vec3{50, 0, -5})),
		portal.BoundsAround(1, 1), portal.Options{})
	c.SetExit(d)
	d.SetExit(c)
	tc := sys.NewTrigger(c, TriggerOptions{Grace: 0.5})

	body := &fakeKinematic{
		fakeBody: fakeBody{pose: transform.At(mgl32.Vec3{0, 0, -1})},
	}
	ta.Enter(payload{root: body})
	tc.Enter(payload{root: body})
	if sys.Tracking() != 1 {
		t.Fatalf("tracking %d records after hand-off, want 1", sys.Tracking())
	}
	if owner, _ := sys.OwnerOf(body); owner != tc {
		t.Error("second trigger did not take the record over")
	}

	// the stale entrance-side leave must not start the countdown
	ta.Leave(payload{root: body})
	for i := 0; i < 5; i++ {
		sys.Update(0.2)
	}
	if sys.Tracking() != 1 {
		t.Fatal("record expired after a stale leave")
	}

	tc.Leave(payload{root: body})
	sys.Update(0.6)
	if sys.Tracking() != 0 {
		t.Error("record survived the owning trigger's leave")
	}
}

func TestExitSideReactivation(t *testing.T) {
	sys, ta, tb, _, b := corridor()
	body := &fakeRigid{
		fakeBody: fakeBody{pose: transform.At(mgl32.Vec3{0, 0, -1})},
		vel:      mgl32.Vec3{0, 0, 2},
	}
	clone := &fakeClone{}
	ta.Enter(payload{root: body, clone: clone})
	nearV(t, body.pose.Pos, mgl32.Vec3{0, 0, -6})

	// the body now overlaps the exit volume, still moving away from it
	tb.Enter(payload{root: body, clone: clone})
	nearV(t, body.pose.Pos, mgl32.Vec3{0, 0, -6})
	if !clone.visible || clone.alpha != 1 {
		t.Error("reactivated clone not shown")
	}

	sys.Update(0.016)
	// the clone now previews the receding view back on the entrance side
	nearV(t, clone.pose.Pos, b.PoseToExit(body.pose).Pos)
	nearV(t, clone.pose.Pos, mgl32.Vec3{0, 0, -1})
	nearV(t, body.pose.Pos, mgl32.Vec3{0, 0, -6})

	tb.Leave(payload{root: body, clone: clone})
	sys.Update(0.6)
	if sys.Tracking() != 0 {
		t.Errorf("tracking %d records after the exit-side leave, want 0", sys.Tracking())
	}
	if clone.visible {
		t.Error("clone still visible after the record ended")
	}
}

func TestDisposedBodyPruned(t *testing.T) {
	sys, ta, _, _, _ := corridor()
	body := &fakeKinematic{
		fakeBody: fakeBody{pose: transform.At(mgl32.Vec3{0, 0, -1})},
	}
	clone := &fakeClone{}
	ta.Enter(payload{root: body, clone: clone})
	moves := clone.moves

	body.disposed = true
	sys.Update(0.016)
	if sys.Tracking() != 0 {
		t.Errorf("tracking %d records after disposal, want 0", sys.Tracking())
	}
	if clone.visible {
		t.Error("clone of a disposed body still visible")
	}
	if clone.moves != moves {
		t.Error("clone of a disposed body still previewed")
	}
}

func TestEnterDisposedIsIgnored(t *testing.T) {
	sys, ta, _, _, _ := corridor()
	body := &fakeKinematic{
		fakeBody: fakeBody{pose: transform.At(mgl32.Vec3{0, 0, -1}), disposed: true},
	}
	ta.Enter(payload{root: body})
	if sys.Tracking() != 0 {
		t.Error("disposed body entered tracking")
	}
}

func TestOwnerOfUnknown(t *testing.T) {
	sys, _, _, _, _ := corridor()
	body := &fakeBody{}
	if _, ok := sys.OwnerOf(body); ok {
		t.Error("owner reported for an untracked body")
	}
}
