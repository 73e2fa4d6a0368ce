package systems

import (
	"github.com/automoto/skyswing/components"
	cfg "github.com/automoto/skyswing/config"
	"github.com/automoto/skyswing/gamemath"
	"github.com/automoto/skyswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RopePolicy moves the player while the rope is attached
type RopePolicy interface {
	Apply(obj *components.ObjectData, physics *components.PhysicsData, rope *components.RopeData)
}

// ConstraintRope keeps the rope at its attach length and adds a swing
// impulse perpendicular to it.
type ConstraintRope struct {
	SwingForce float64
}

func (c ConstraintRope) Apply(obj *components.ObjectData, physics *components.PhysicsData, rope *components.RopeData) {
	px, py := obj.CenterX(), obj.CenterY()
	dx := rope.Anchor.X - px
	dy := rope.Anchor.Y - py
	if dx == 0 && dy == 0 {
		return
	}

	x, y := gamemath.RopeCorrection(px, py, rope.Anchor.X, rope.Anchor.Y, rope.Length)
	obj.PlaceCenter(x, y)

	ix, iy := gamemath.SwingImpulse(dx, dy, c.SwingForce)
	physics.SpeedX += ix
	physics.SpeedY += iy
}

// AttractionRope pulls the player towards the anchor with a constant
// strength and never moves the player directly.
type AttractionRope struct {
	Strength  float64
	Threshold float64
}

func (a AttractionRope) Apply(obj *components.ObjectData, physics *components.PhysicsData, rope *components.RopeData) {
	ix, iy := gamemath.PullImpulse(
		rope.Anchor.X-obj.CenterX(),
		rope.Anchor.Y-obj.CenterY(),
		a.Strength, a.Threshold,
	)
	physics.SpeedX += ix
	physics.SpeedY += iy
}

// RopePolicyFor returns the rope policy for id using the live tuning
func RopePolicyFor(id cfg.RopePolicyID) RopePolicy {
	switch id {
	case cfg.RopeAttraction:
		return AttractionRope{Strength: cfg.Rope.PullStrength, Threshold: cfg.Rope.PullThreshold}
	default:
		return ConstraintRope{SwingForce: cfg.Rope.SwingForce}
	}
}

// UpdateRope attaches and releases the rope from this frame's pointer
// events, then lets the mode's rope policy act on the player.
func UpdateRope(e *ecs.ECS) {
	session := getSession(e)
	input := getOrCreateInput(e)
	cameraX := 0.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cameraX = components.Camera.Get(cameraEntry).X
	}
	policy := RopePolicyFor(session.Mode.Rope)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		physics := components.Physics.Get(entry)
		rope := components.Rope.Get(entry)

		for _, ev := range input.Pointer {
			if ev.Down {
				anchor := math.Vec2{X: ev.X + cameraX, Y: ev.Y}
				rope.Attach(anchor, obj.CenterX(), obj.CenterY())
			} else {
				rope.Release()
			}
		}

		if rope.Active {
			policy.Apply(obj, physics, rope)
		}
	})
}
