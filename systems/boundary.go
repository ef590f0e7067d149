package systems

import (
	"math"

	"github.com/whereismaya/bubblepit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoundary clamps bodies to the playfield edges and reflects their
// velocity. Balls get a dedicated four-sided check that forces the velocity
// sign inward, so a ball keeps moving back into the field even when an
// external direction change left it moving the wrong way at the clamp.
func UpdateBoundary(ecs *ecs.ECS) {
	sim := simState(ecs)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Static || body.AttachedTo != nil || body.Dragged {
			return
		}
		if body.Shape == components.ShapeBall {
			reflectBall(sim, body)
			return
		}
		reflectBody(sim, body)
	})
}

func reflectBody(sim *components.SimData, body *components.BodyData) {
	if body.X-body.Radius < sim.MinX() {
		body.X = sim.MinX() + body.Radius
		body.VX = -body.VX
	} else if body.X+body.Radius > sim.MaxX() {
		body.X = sim.MaxX() - body.Radius
		body.VX = -body.VX
	}

	if body.Y-body.Radius < sim.MinY() {
		body.Y = sim.MinY() + body.Radius
		body.VY = -body.VY
	} else if body.Y+body.Radius > sim.MaxY() {
		body.Y = sim.MaxY() - body.Radius
		body.VY = -body.VY
	}
}

func reflectBall(sim *components.SimData, body *components.BodyData) {
	if body.X-body.Radius < sim.MinX() {
		body.X = sim.MinX() + body.Radius
		body.VX = math.Abs(body.VX)
	}
	if body.X+body.Radius > sim.MaxX() {
		body.X = sim.MaxX() - body.Radius
		body.VX = -math.Abs(body.VX)
	}
	if body.Y-body.Radius < sim.MinY() {
		body.Y = sim.MinY() + body.Radius
		body.VY = math.Abs(body.VY)
	}
	if body.Y+body.Radius > sim.MaxY() {
		body.Y = sim.MaxY() - body.Radius
		body.VY = -math.Abs(body.VY)
	}
}
