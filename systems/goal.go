package systems

import (
	"math"
	"time"

	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/whereismaya/bubblepit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoals runs rectangle-circle detection between every goal body and
// every free ball or puck. A contact always bounces the circle off the hit
// side; it only scores when the cooldown has elapsed and the hit side is the
// goal's active side.
func UpdateGoals(ecs *ecs.ECS) {
	now := tickNow(ecs)
	tags.Goal.Each(ecs.World, func(ge *donburi.Entry) {
		goal := components.Body.Get(ge)
		components.Body.Each(ecs.World, func(be *donburi.Entry) {
			if be == ge {
				return
			}
			body := components.Body.Get(be)
			if body.Shape != components.ShapeBall && body.Shape != components.ShapePuck {
				return
			}
			if body.AttachedTo != nil {
				return
			}
			resolveGoalContact(goal, body, now)
		})
	})
}

// goalHalfExtents returns the goal rectangle's half extents. The rectangle is
// 1:2 (width:height), swapped when the goal is rotated a quarter turn.
func goalHalfExtents(goal *components.BodyData) (hw, hh float64) {
	hw = goal.Radius * cfg.Goal.HalfWidthScale
	hh = goal.Radius * cfg.Goal.HalfHeightScale
	if quarterTurned(goal.Rotation) {
		hw, hh = hh, hw
	}
	return hw, hh
}

// quarterTurned reports whether a rotation in degrees is 90/270-equivalent.
func quarterTurned(deg float64) bool {
	m := math.Mod(math.Abs(deg), 180)
	return math.Abs(m-90) < 1
}

func resolveGoalContact(goal, body *components.BodyData, now time.Time) {
	hw, hh := goalHalfExtents(goal)

	// Closest point on the rectangle to the circle center.
	cx := gamemath.Clamp(body.X, goal.X-hw, goal.X+hw)
	cy := gamemath.Clamp(body.Y, goal.Y-hh, goal.Y+hh)
	dx := body.X - cx
	dy := body.Y - cy
	if dx*dx+dy*dy >= body.Radius*body.Radius {
		return
	}

	if goal.ActiveSide == "" {
		// First contact pins the scoring side: vertical goals score on the
		// left edge, horizontal ones on top.
		if hh >= hw {
			goal.ActiveSide = components.SideLeft
		} else {
			goal.ActiveSide = components.SideTop
		}
	}

	side := hitSide(goal, body, hw, hh)

	if now.After(goal.GoalCooldown) && side == goal.ActiveSide {
		goal.Goals++
		goal.FlashUntil = now.Add(cfg.Goal.FlashDuration)
		goal.GoalCooldown = now.Add(cfg.Goal.Cooldown)
	}

	// Push the circle out along the hit side and force the perpendicular
	// velocity component outward. One-directional bounce, not a mirror.
	out := body.Radius + cfg.Goal.PushOut
	switch side {
	case components.SideLeft:
		body.X = goal.X - hw - out
		body.VX = -math.Abs(body.VX)
	case components.SideRight:
		body.X = goal.X + hw + out
		body.VX = math.Abs(body.VX)
	case components.SideTop:
		body.Y = goal.Y - hh - out
		body.VY = -math.Abs(body.VY)
	case components.SideBottom:
		body.Y = goal.Y + hh + out
		body.VY = math.Abs(body.VY)
	}

	if body.Speed() < cfg.Goal.MinExitSpeed {
		body.VX, body.VY = gamemath.Rescale(body.VX, body.VY, cfg.Goal.MinExitSpeed)
	}
}

// hitSide returns the rectangle edge closest to the circle center.
func hitSide(goal, body *components.BodyData, hw, hh float64) components.Side {
	side := components.SideLeft
	best := math.Abs(body.X - (goal.X - hw))

	if d := math.Abs(body.X - (goal.X + hw)); d < best {
		side, best = components.SideRight, d
	}
	if d := math.Abs(body.Y - (goal.Y - hh)); d < best {
		side, best = components.SideTop, d
	}
	if d := math.Abs(body.Y - (goal.Y + hh)); d < best {
		side = components.SideBottom
	}
	return side
}
