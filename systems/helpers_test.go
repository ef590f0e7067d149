package systems

import (
	"time"

	"github.com/whereismaya/bubblepit/clock"
	"github.com/whereismaya/bubblepit/components"
	"github.com/whereismaya/bubblepit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestSim() (*ecs.ECS, *clock.Mock) {
	e := ecs.NewECS(donburi.NewWorld())
	mock := clock.NewMock(testStart)
	factory.CreateSim(e, mock)
	return e, mock
}

// spawnAt creates a body and zeroes the random spawn velocity so tests can
// set their own.
func spawnAt(e *ecs.ECS, x, y float64, shape components.Shape, radius float64) (*donburi.Entry, *components.BodyData) {
	entry := factory.CreateBody(e, x, y, shape, radius)
	body := components.Body.Get(entry)
	body.VX, body.VY = 0, 0
	return entry, body
}

func approx(got, want, tol float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tol
}
