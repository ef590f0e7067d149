package factory

import (
	"math"
	"math/rand"

	"github.com/whereismaya/bubblepit/archetypes"
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBody spawns a free body with a random initial velocity. A zero radius
// falls back to the default.
func CreateBody(ecs *ecs.ECS, x, y float64, shape components.Shape, radius float64) *donburi.Entry {
	if radius <= 0 {
		radius = cfg.Body.DefaultRadius
	}

	var e *donburi.Entry
	switch shape {
	case components.ShapeStriker:
		e = archetypes.Striker.Spawn(ecs)
	case components.ShapeGoal:
		e = archetypes.Goal.Spawn(ecs)
	case components.ShapeBall:
		e = archetypes.Ball.Spawn(ecs)
	case components.ShapePuck:
		e = archetypes.Puck.Spawn(ecs)
	default:
		e = archetypes.Bubble.Spawn(ecs)
	}

	sim := components.Sim.Get(components.Sim.MustFirst(ecs.World))
	vx, vy := randomVelocity()

	body := components.BodyData{
		Index:       sim.NextIndex,
		X:           x,
		Y:           y,
		Radius:      radius,
		HeightRatio: cfg.Body.DefaultHeightRatio,
		Shape:       shape,
		VX:          vx,
		VY:          vy,
	}
	if shape == components.ShapeStriker {
		body.StrikerVelocity = cfg.Attack.DefaultImpulse
	}
	components.Body.SetValue(e, body)
	sim.NextIndex++

	return e
}

// CreateStriker spawns a striker body with the default attack impulse.
func CreateStriker(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	return CreateBody(ecs, x, y, components.ShapeStriker, radius)
}

// CreateGoal spawns a goal body. The scoring side is pinned on its first
// contact, not here.
func CreateGoal(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	return CreateBody(ecs, x, y, components.ShapeGoal, radius)
}

// CreateBall spawns a ball body.
func CreateBall(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	return CreateBody(ecs, x, y, components.ShapeBall, radius)
}

// CreatePuck spawns a puck body.
func CreatePuck(ecs *ecs.ECS, x, y, radius float64) *donburi.Entry {
	return CreateBody(ecs, x, y, components.ShapePuck, radius)
}

func randomVelocity() (float64, float64) {
	speed := cfg.Body.MinSpawnSpeed + rand.Float64()*(cfg.Body.MaxSpawnSpeed-cfg.Body.MinSpawnSpeed)
	angle := rand.Float64() * 2 * math.Pi
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
