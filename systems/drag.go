package systems

import (
	"github.com/whereismaya/bubblepit/components"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BeginDrag starts dragging a body. A dragged body bypasses integration and
// boundary reflection; its position is set directly by UpdateDrag. Static and
// attached bodies cannot be dragged.
func BeginDrag(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(e)
	if body.Static || body.AttachedTo != nil {
		return
	}

	sim := simState(ecs)
	if sim.DragTarget != nil {
		EndDrag(ecs)
	}
	body.Dragged = true
	sim.DragTarget = e
}

// UpdateDrag moves the dragged body to the cursor, clamped to the playfield.
func UpdateDrag(ecs *ecs.ECS, x, y float64) {
	sim := simState(ecs)
	if sim.DragTarget == nil || !sim.DragTarget.Valid() {
		sim.DragTarget = nil
		return
	}
	body := components.Body.Get(sim.DragTarget)
	body.X = gamemath.Clamp(x, sim.MinX()+body.Radius, sim.MaxX()-body.Radius)
	body.Y = gamemath.Clamp(y, sim.MinY()+body.Radius, sim.MaxY()-body.Radius)
}

// EndDrag releases the dragged body back to normal integration.
func EndDrag(ecs *ecs.ECS) {
	sim := simState(ecs)
	if sim.DragTarget != nil && sim.DragTarget.Valid() {
		components.Body.Get(sim.DragTarget).Dragged = false
	}
	sim.DragTarget = nil
}

// PickBody returns the topmost body whose circle contains the point, topmost
// meaning the most recently spawned. Used by the demo input layer for drag
// picking.
func PickBody(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	var best *donburi.Entry
	bestIndex := -1
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if gamemath.Length(x-body.X, y-body.Y) > body.Radius {
			return
		}
		if body.Index > bestIndex {
			best, bestIndex = e, body.Index
		}
	})
	return best
}
