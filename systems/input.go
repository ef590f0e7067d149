package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/whereismaya/bubblepit/components"
	"github.com/whereismaya/bubblepit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spawnKeys = map[ebiten.Key]components.Shape{
	ebiten.Key1: components.ShapeCircle,
	ebiten.Key2: components.ShapeSquare,
	ebiten.Key3: components.ShapeTriangle,
	ebiten.Key4: components.ShapePentagon,
	ebiten.Key5: components.ShapeHexagon,
	ebiten.Key6: components.ShapeOctagon,
	ebiten.Key7: components.ShapeBall,
	ebiten.Key8: components.ShapePuck,
	ebiten.Key9: components.ShapeStriker,
	ebiten.Key0: components.ShapeGoal,
}

// UpdateInput maps mouse and keyboard input to simulation commands. Dragging
// uses the left mouse button; C begins a capture, V releases it, X triggers
// an attack, Space pauses, S saves the current bodies.
func UpdateInput(ecs *ecs.ECS) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e := PickBody(ecs, x, y); e != nil {
			BeginDrag(ecs, e)
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		UpdateDrag(ecs, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		EndDrag(ecs)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if striker, ok := firstStriker(ecs); ok {
			BeginCapture(ecs, striker)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		EndCapture(ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if striker, ok := firstStriker(ecs); ok {
			TriggerAttack(ecs, striker)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		TogglePaused(ecs)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = SaveBodies(ecs)
	}

	for key, shape := range spawnKeys {
		if inpututil.IsKeyJustPressed(key) {
			radius := 40.0
			if shape == components.ShapeGoal {
				radius = 120.0
			}
			SpawnBody(ecs, x, y, shape, radius)
		}
	}
}

func firstStriker(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Striker.First(ecs.World)
}
