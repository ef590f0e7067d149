package systems

import (
	"math"
	"time"

	"github.com/whereismaya/bubblepit/components"
	"github.com/yohamta/donburi/ecs"
)

func simState(ecs *ecs.ECS) *components.SimData {
	return components.Sim.Get(components.Sim.MustFirst(ecs.World))
}

func captureState(ecs *ecs.ECS) *components.CaptureData {
	return components.Capture.Get(components.Capture.MustFirst(ecs.World))
}

func tickNow(ecs *ecs.ECS) time.Time {
	return simState(ecs).Clock.Now()
}

func overlaps(a, b *components.BodyData) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.Radius+b.Radius
}
