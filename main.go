package main

import (
	"flag"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"goportal/collision"
	"goportal/commandline"
	"goportal/conlog"
	"goportal/cvar"
	"goportal/cvars"
	"goportal/gametime"
	"goportal/portal"
	"goportal/rand"
	"goportal/teleport"
	"goportal/transform"
)

// Headless corridor demo: two portal surfaces facing each other, a few
// rigid balls looping through them forever. It stands in for the
// physics and render hosts, reporting overlap transitions and driving
// the per-frame updates in the required order.

const (
	layerWall = 3

	hostWidth  = 1280
	hostHeight = 720
)

func main() {
	flag.Parse()
	conlog.SetPrintf(func(format string, v ...interface{}) {
		fmt.Printf(format, v...)
	})
	conlog.SetDeveloper(cvars.Developer.Bool)
	applyFlags()
	dumpCvars()
	run()
}

// dumpCvars lists the registry in id order, developer output only.
func dumpCvars() {
	for id := 0; ; id++ {
		cv, err := cvar.GetByID(id)
		if err != nil {
			return
		}
		tags := ""
		if cv.Archive() {
			tags += " archive"
		}
		if cv.Notify() {
			tags += " notify"
		}
		conlog.DPrintf("cvar %d: %s = %q%s\n", cv.ID(), cv.Name(), cv.String(), tags)
	}
}

func applyFlags() {
	if commandline.Developer() {
		cvars.Developer.SetValue(float32(commandline.DeveloperNum()))
	}
	if s := commandline.Seed(); s >= 0 {
		cvars.SimSeed.SetValue(float32(s))
	}
	if n := commandline.Bodies(); n >= 0 {
		cvars.SimBodies.SetValue(float32(n))
	}
	if v := commandline.Speed(); v >= 0 {
		cvars.SimSpeed.SetValue(float32(v))
	}
	if v := commandline.Push(); v >= 0 {
		cvars.TeleportExitPush.SetValue(float32(v))
	}
	if v := commandline.Grace(); v >= 0 {
		cvars.TeleportGrace.SetValue(float32(v))
	}
}

// ball is the demo's scene object: a rigid mover with a collision
// layer mask and a ghost stand-in on the far side.
type ball struct {
	name    string
	pose    transform.Pose
	vel     mgl32.Vec3
	angVel  mgl32.Vec3
	ghost   *ghost
	layers  map[int]bool
	crossed int
}

func (b *ball) Pose() transform.Pose { return b.pose }

// SetPose only runs on a completed crossing, the demo's own motion
// writes the fields directly.
func (b *ball) SetPose(p transform.Pose) {
	b.pose = p
	b.crossed++
}

func (b *ball) Disposed() bool                  { return false }
func (b *ball) Velocity() mgl32.Vec3            { return b.vel }
func (b *ball) SetVelocity(v mgl32.Vec3)        { b.vel = v }
func (b *ball) AngularVelocity() mgl32.Vec3     { return b.angVel }
func (b *ball) SetAngularVelocity(v mgl32.Vec3) { b.angVel = v }

func (b *ball) Root() teleport.Body   { return b }
func (b *ball) Clone() teleport.Clone { return b.ghost }

func (b *ball) DisableLayers() []int           { return []int{layerWall} }
func (b *ball) LayerEnabled(l int) bool        { return b.layers[l] }
func (b *ball) SetLayerEnabled(l int, on bool) { b.layers[l] = on }

func (b *ball) integrate(dt float32) {
	b.pose.Pos = b.pose.Pos.Add(b.vel.Mul(dt))
	if w := b.angVel.Len(); w > 0 {
		spin := mgl32.QuatRotate(w*dt, b.angVel.Mul(1/w))
		b.pose.Rot = spin.Mul(b.pose.Rot).Normalize()
	}
}

// ghost is the far-side stand-in a renderer would draw, the demo only
// records what it is told.
type ghost struct {
	pose    transform.Pose
	visible bool
	alpha   float32
}

func (g *ghost) SetPose(p transform.Pose) { g.pose = p }
func (g *ghost) SetVisible(v bool)        { g.visible = v }
func (g *ghost) SetAlpha(a float32)       { g.alpha = a }

// volume is the overlap box a physics host would sweep in front of a
// surface. update reports begin and end transitions per ball.
type volume struct {
	surface *portal.Surface
	depth   float32
	inside  map[*ball]bool
}

func newVolume(s *portal.Surface, depth float32) *volume {
	return &volume{surface: s, depth: depth, inside: make(map[*ball]bool)}
}

func (v *volume) contains(p mgl32.Vec3) bool {
	l := v.surface.World().ToLocal(p)
	if math32.Abs(l[2]) > v.depth {
		return false
	}
	return v.surface.Bounds().Contains(l[0], l[1])
}

func (v *volume) update(balls []*ball, enter, leave func(*ball)) {
	for _, b := range balls {
		in := v.contains(b.pose.Pos)
		if in == v.inside[b] {
			continue
		}
		v.inside[b] = in
		if in {
			enter(b)
		} else {
			leave(b)
		}
	}
}

func buildScene() (*portal.Registry, *portal.Surface, *portal.Surface) {
	reg := portal.NewRegistry()
	orange := portal.NewSurface("orange", transform.NewNode(transform.Pose{
		Rot:   mgl32.QuatRotate(math32.Pi, mgl32.Vec3{0, 1, 0}),
		Scale: mgl32.Vec3{1, 1, 1},
	}), portal.BoundsAround(1.5, 2), portal.Options{})
	blue := portal.NewSurface("blue", transform.NewNode(transform.At(mgl32.Vec3{0, 0, -12})),
		portal.BoundsAround(1.5, 2), portal.Options{})
	orange.SetExit(blue)
	blue.SetExit(orange)
	reg.Add(orange)
	reg.Add(blue)
	return reg, orange, blue
}

func spawn(gen *rand.Generator) []*ball {
	n := int(cvars.SimBodies.Value())
	if n < 1 {
		n = 1
	}
	speed := cvars.SimSpeed.Value()
	balls := make([]*ball, 0, n)
	for i := 0; i < n; i++ {
		balls = append(balls, &ball{
			name: fmt.Sprintf("ball-%d", i),
			pose: transform.At(mgl32.Vec3{
				gen.Range(-1, 1),
				gen.Range(-1.5, 1.5),
				gen.Range(-10, -2),
			}),
			vel:    mgl32.Vec3{0, 0, speed},
			angVel: mgl32.Vec3{gen.Range(-2, 2), gen.Range(-2, 2), gen.Range(-2, 2)},
			ghost:  &ghost{},
			layers: map[int]bool{layerWall: true},
		})
	}
	return balls
}

func traceCorridor(reg *portal.Registry) {
	conlog.Printf("corridor ray:\n")
	reg.Raycast(mgl32.Vec3{0, 0, -6}, mgl32.Vec3{0, 0, 1},
		func(origin, dir mgl32.Vec3, segment, total float32, depth int) bool {
			conlog.Printf("  depth %d: from (%.1f %.1f %.1f) segment %.1f total %.1f\n",
				depth, origin[0], origin[1], origin[2], segment, total)
			return false
		}, 100, int(cvars.PortalMaxRecursions.Value()), true)
}

func run() {
	reg, orange, blue := buildScene()

	tsys := teleport.NewSystem()
	tOrange := tsys.NewTrigger(orange, teleport.TriggerOptions{})
	tBlue := tsys.NewTrigger(blue, teleport.TriggerOptions{})

	csys := collision.NewSystem()
	zOrange := csys.NewZone("orange", collision.ZoneOptions{})
	zBlue := csys.NewZone("blue", collision.ZoneOptions{})

	vOrange := newVolume(orange, 1)
	vBlue := newVolume(blue, 1)

	gen := rand.New(uint32(cvars.SimSeed.Value()))
	balls := spawn(&gen)

	viewer := transform.At(mgl32.Vec3{0, 1.5, 6})
	proj := mgl32.Perspective(mgl32.DegToRad(75),
		float32(hostWidth)/float32(hostHeight), 0.1, 200)
	look := mgl32.LookAtV(viewer.Pos, mgl32.Vec3{0, 0, -6}, mgl32.Vec3{0, 1, 0})
	fr := portal.FrustumFromMatrix(proj.Mul4(look))

	cam := orange.ExitCameraPose(viewer)
	w, h := orange.ViewportSize(hostWidth, hostHeight)
	conlog.Printf("portal %s: exit camera (%.1f %.1f %.1f), near clip %.2f, viewport %dx%d\n",
		orange.Name(), cam.Pos[0], cam.Pos[1], cam.Pos[2],
		orange.ExitNearClip(viewer), w, h)
	traceCorridor(reg)

	rate := commandline.Rate()
	if rate <= 0 {
		rate = 72
	}
	dt := 1 / rate
	gt := &gametime.GameTime{}

	for i := 0; i < commandline.Frames(); i++ {
		gt.Step(dt)
		fdt := float32(gt.FrameTime())

		// host motion first
		for _, b := range balls {
			b.integrate(fdt)
		}
		// the viewer is static, so the camera is settled here

		// overlap transitions, then the portal systems last
		vOrange.update(balls,
			func(b *ball) { tOrange.Enter(b); zOrange.Enter(b) },
			func(b *ball) { tOrange.Leave(b); zOrange.Leave(b) })
		vBlue.update(balls,
			func(b *ball) { tBlue.Enter(b); zBlue.Enter(b) },
			func(b *ball) { tBlue.Leave(b); zBlue.Leave(b) })

		tsys.Update(fdt)
		csys.Update(fdt)
		for _, s := range reg.All() {
			s.UpdateVisibility(viewer, &fr, fdt)
		}
		gt.FrameIncrease()
	}

	conlog.Printf("simulated %d frames, %.1fs game time\n", gt.FrameCount(), gt.Time())
	for _, b := range balls {
		conlog.Printf("%s: %d crossings, at (%.1f %.1f %.1f), wall layer enabled %v\n",
			b.name, b.crossed, b.pose.Pos[0], b.pose.Pos[1], b.pose.Pos[2],
			b.LayerEnabled(layerWall))
	}
	conlog.Printf("still tracking: %d crossings, %d+%d suppressor records\n",
		tsys.Tracking(), zOrange.Tracking(), zBlue.Tracking())
}
