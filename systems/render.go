package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/whereismaya/bubblepit/components"
	"github.com/yohamta/donburi/ecs"
)

var shapeColors = map[components.Shape]color.RGBA{
	components.ShapeCircle:   {R: 80, G: 160, B: 255, A: 255},
	components.ShapeSquare:   {R: 120, G: 220, B: 120, A: 255},
	components.ShapeTriangle: {R: 240, G: 200, B: 80, A: 255},
	components.ShapePentagon: {R: 200, G: 120, B: 240, A: 255},
	components.ShapeHexagon:  {R: 120, G: 220, B: 220, A: 255},
	components.ShapeOctagon:  {R: 240, G: 140, B: 100, A: 255},
	components.ShapeStriker:  {R: 255, G: 80, B: 80, A: 255},
	components.ShapeGoal:     {R: 200, G: 200, B: 200, A: 255},
	components.ShapeBall:     {R: 255, G: 255, B: 255, A: 255},
	components.ShapePuck:     {R: 60, G: 60, B: 70, A: 255},
}

var borderColor = color.RGBA{R: 90, G: 90, B: 110, A: 255}

// DrawArena renders the playfield border, every body and the scoreboard from
// the per-frame snapshot.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	sim := simState(e)
	vector.StrokeRect(screen,
		float32(sim.MinX()), float32(sim.MinY()),
		float32(sim.MaxX()-sim.MinX()), float32(sim.MaxY()-sim.MinY()),
		1, borderColor, true)

	scoreY := 12
	for _, s := range Snapshot(e) {
		col := bodyColor(s)

		if s.Shape == components.ShapeGoal {
			hw, hh := goalDrawExtents(s)
			vector.DrawFilledRect(screen,
				float32(s.X-hw), float32(s.Y-hh),
				float32(2*hw), float32(2*hh), col, true)
			label := fmt.Sprintf("goal #%d: %d", s.Index, s.Goals)
			ebitenutil.DebugPrintAt(screen, label, 16, scoreY)
			scoreY += 16
			continue
		}

		if s.Shape == components.ShapeSquare {
			vector.DrawFilledRect(screen,
				float32(s.X-s.Radius), float32(s.Y-s.Radius),
				float32(2*s.Radius), float32(2*s.Radius), col, true)
			continue
		}

		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), col, true)
		if s.Shape == components.ShapeStriker {
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius*1.5), 1, borderColor, true)
		}
		if s.Captured {
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius+3), 1, color.RGBA{R: 255, G: 255, B: 0, A: 255}, true)
		}
	}

	if sim.Paused {
		ebitenutil.DebugPrintAt(screen, "paused", int(sim.MinX()), int(sim.MinY())-14)
	}
}

func bodyColor(s BodySnapshot) color.RGBA {
	col, ok := shapeColors[s.Shape]
	if !ok {
		// Unknown shape labels keep their record but render as circles.
		col = shapeColors[components.ShapeCircle]
	}
	if s.HitFlash {
		glow := ease.OutQuad(float32(s.HitFlashLeft), 0, 1, 1)
		col = lighten(col, glow)
	}
	if s.GoalFlash {
		col = lighten(col, 1)
	}
	return col
}

func goalDrawExtents(s BodySnapshot) (float64, float64) {
	hw, hh := s.Radius*0.5, s.Radius
	if quarterTurned(s.Rotation) {
		hw, hh = hh, hw
	}
	return hw, hh
}

// lighten blends a color toward white by t in [0, 1].
func lighten(c color.RGBA, t float32) color.RGBA {
	blend := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*t)
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: c.A}
}
