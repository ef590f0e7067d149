package systems

import (
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/whereismaya/bubblepit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBody creates a body at the given position. An empty shape spawns a
// circle; zero radius uses the default. The new body starts with a random
// velocity.
func SpawnBody(ecs *ecs.ECS, x, y float64, shape components.Shape, radius float64) *donburi.Entry {
	if shape == "" {
		shape = components.ShapeCircle
	}
	return factory.CreateBody(ecs, x, y, shape, radius)
}

// SetVelocity overwrites a body's velocity.
func SetVelocity(e *donburi.Entry, vx, vy float64) {
	body := components.Body.Get(e)
	body.VX, body.VY = vx, vy
}

// SetStrikerVelocity sets a striker's attack impulse magnitude, clamped into
// the allowed band.
func SetStrikerVelocity(e *donburi.Entry, v float64) {
	body := components.Body.Get(e)
	body.StrikerVelocity = gamemath.Clamp(v, cfg.Attack.MinImpulse, cfg.Attack.MaxImpulse)
}

// SetPaused pauses or resumes the simulation. While paused the speed
// multiplier is zero; commands still apply.
func SetPaused(ecs *ecs.ECS, paused bool) {
	simState(ecs).Paused = paused
}

// TogglePaused flips the pause flag and returns the new state.
func TogglePaused(ecs *ecs.ECS) bool {
	sim := simState(ecs)
	sim.Paused = !sim.Paused
	return sim.Paused
}

// SetSpeed sets the global speed multiplier.
func SetSpeed(ecs *ecs.ECS, speed float64) {
	simState(ecs).Speed = speed
}
