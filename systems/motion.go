package systems

import (
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion advances every free body by its velocity scaled with the
// global speed multiplier. Fixed, static, attached and dragged bodies are
// skipped; attached bodies are driven by the capture follow pass instead.
func UpdateMotion(ecs *ecs.ECS) {
	mult := simState(ecs).Multiplier()
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Fixed || body.Static || body.AttachedTo != nil || body.Dragged {
			return
		}
		body.X += body.VX * mult
		body.Y += body.VY * mult
	})
}

// UpdateBallSpeed applies the ball damping and clamps ball speed into the
// configured band, keeping a ball perpetually alive on the playfield. Pucks
// intentionally do not receive this clamp.
func UpdateBallSpeed(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Shape != components.ShapeBall {
			return
		}
		if body.Static || body.AttachedTo != nil {
			return
		}

		body.VX *= cfg.Ball.Damping
		body.VY *= cfg.Ball.Damping

		speed := body.Speed()
		if speed < cfg.Ball.MinSpeed {
			body.VX, body.VY = gamemath.Rescale(body.VX, body.VY, cfg.Ball.MinSpeed)
		} else if speed > cfg.Ball.MaxSpeed {
			body.VX, body.VY = gamemath.Rescale(body.VX, body.VY, cfg.Ball.MaxSpeed)
		}
	})
}
