// SPDX-License-Identifier: GPL-2.0-or-later

package teleport

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"goportal/conlog"
	"goportal/cvars"
	"goportal/portal"
)

// TriggerOptions tune one trigger. Zero values fall back to the
// registered cvar defaults.
type TriggerOptions struct {
	// DisableVelocityCheck teleports on first contact regardless of
	// approach direction.
	DisableVelocityCheck bool
	// ExitPush adds velocity along the exit front normal on teleport.
	ExitPush float32
	// Grace keeps a record and its clone alive after a crossing ends.
	Grace float32
}

// Trigger is the overlap volume in front of one portal surface. The
// physics host reports overlap begin and end through Enter and Leave,
// the teleport decision falls every tick inside System.Update.
type Trigger struct {
	sys     *System
	surface *portal.Surface
	opts    TriggerOptions
	inert   bool
}

// NewTrigger builds the trigger serving surface. A nil or unpaired
// surface is a configuration error, the trigger logs it and stays
// inert.
func (sys *System) NewTrigger(surface *portal.Surface, opts TriggerOptions) *Trigger {
	tr := &Trigger{sys: sys, surface: surface, opts: opts}
	if surface == nil {
		conlog.Printf("teleport trigger: no portal surface, trigger is inert\n")
		tr.inert = true
	} else if surface.Exit() == nil {
		conlog.Printf("teleport trigger %s: no exit pairing, trigger is inert\n", surface.Name())
		tr.inert = true
	}
	sys.triggers = append(sys.triggers, tr)
	return tr
}

func (tr *Trigger) Surface() *portal.Surface {
	return tr.surface
}

func (tr *Trigger) grace() float32 {
	if tr.opts.Grace > 0 {
		return tr.opts.Grace
	}
	return cvars.TeleportGrace.Value()
}

func (tr *Trigger) exitPush() float32 {
	if tr.opts.ExitPush != 0 {
		return tr.opts.ExitPush
	}
	return cvars.TeleportExitPush.Value()
}

func (tr *Trigger) velocityCheck() bool {
	return !tr.opts.DisableVelocityCheck && cvars.TeleportVelocityCheck.Bool()
}

// Enter records obj starting to overlap this trigger. An object
// already crossing elsewhere is handed over, never tracked twice.
// Bodies already moving in teleport immediately.
func (tr *Trigger) Enter(obj Teleportable) {
	if tr.inert || obj == nil {
		return
	}
	root := obj.Root()
	if root == nil || root.Disposed() {
		return
	}
	rec, ok := tr.sys.records[root]
	if ok {
		tr.adopt(rec)
	} else {
		rec = &record{
			body:      root,
			clone:     obj.Clone(),
			kind:      kindOf(root),
			owner:     tr,
			keepAlive: tr.grace(),
			alpha:     1,
		}
		tr.sys.records[root] = rec
		if rec.clone != nil {
			rec.clone.SetPose(tr.surface.PoseToExit(root.Pose()))
			rec.clone.SetAlpha(1)
			rec.clone.SetVisible(true)
		}
	}
	if tr.eligible(rec) {
		tr.teleport(rec)
	}
}

// Leave marks the crossing as out of this trigger's volume and starts
// the keep alive countdown. Only the owning trigger acts, a stale
// entrance-side event after a hand-off is a no-op.
func (tr *Trigger) Leave(obj Teleportable) {
	if tr.inert || obj == nil {
		return
	}
	root := obj.Root()
	if root == nil {
		return
	}
	rec, ok := tr.sys.records[root]
	if !ok || rec.owner != tr {
		return
	}
	tr.retire(rec)
}

// adopt re-parents a crossing record, resetting its countdown and the
// approach sampling to this trigger's frame.
func (tr *Trigger) adopt(rec *record) {
	rec.owner = tr
	rec.left = false
	rec.teleported = false
	rec.keepAlive = tr.grace()
	rec.zSampled = false
	rec.fade = nil
	rec.alpha = 1
	if rec.clone != nil {
		rec.clone.SetAlpha(1)
		rec.clone.SetVisible(true)
	}
}

// retire flags a record left and starts its countdown and clone fade.
func (tr *Trigger) retire(rec *record) {
	rec.left = true
	rec.keepAlive = tr.grace()
	if rec.clone != nil {
		rec.fade = gween.New(rec.alpha, 0, tr.grace(), ease.Linear)
	}
}

// tick advances one record for one frame: preview the clone, retry the
// crossing, count a left record down to its end.
func (tr *Trigger) tick(rec *record, dt float32) {
	if !rec.teleported {
		if rec.clone != nil {
			rec.clone.SetPose(tr.surface.PoseToExit(rec.body.Pose()))
		}
		if !rec.left && tr.eligible(rec) {
			tr.teleport(rec)
		}
	}
	if rec.left {
		if rec.fade != nil {
			v, done := rec.fade.Update(dt)
			rec.alpha = v
			if rec.clone != nil {
				rec.clone.SetAlpha(v)
			}
			if done {
				rec.fade = nil
			}
		}
		rec.keepAlive -= dt
		if rec.keepAlive <= 0 {
			tr.sys.drop(rec)
		}
	}
}

// eligible decides whether the crossing completes this tick. Rigid
// bodies must move against the surface front, everything else must
// show a decreasing normal position across two samples. The first
// sample alone is never enough.
func (tr *Trigger) eligible(rec *record) bool {
	if !tr.velocityCheck() {
		return true
	}
	if rec.kind == kindRigid {
		rb := rec.body.(RigidBody)
		return rb.Velocity().Dot(tr.surface.Front()) < 0
	}
	z := tr.surface.World().ToLocal(rec.body.Pose().Pos)[2]
	ok := rec.zSampled && z < rec.zSample
	rec.zSample = z
	rec.zSampled = true
	return ok
}

func (tr *Trigger) teleport(rec *record) {
	s := tr.surface
	push := s.Exit().Front().Mul(tr.exitPush())
	switch rec.kind {
	case kindRigid:
		rb := rec.body.(RigidBody)
		rb.SetVelocity(s.DirectionToExit(rb.Velocity()).Add(push))
		rb.SetAngularVelocity(s.DirectionToExit(rb.AngularVelocity()))
	case kindKinematic:
		kb := rec.body.(KinematicBody)
		kb.SetVelocity(s.DirectionToExit(kb.Velocity()).Add(push))
	}
	rec.body.SetPose(s.PoseToExit(rec.body.Pose()))
	rec.teleported = true
	tr.retire(rec)
	conlog.DPrintf("teleport: crossed %s to %s\n", s.Name(), s.Exit().Name())
	if ex := tr.sys.triggerFor(s.Exit()); ex != nil {
		rec.owner = ex
	}
}
