package components

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
)

// Shape identifies a body's geometry. It stays a string so unrecognized labels
// survive persistence round-trips; the simulation treats anything it does not
// know as a circle.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapePentagon Shape = "pentagon"
	ShapeHexagon  Shape = "hexagon"
	ShapeOctagon  Shape = "octagon"
	ShapeStriker  Shape = "striker"
	ShapeGoal     Shape = "goal"
	ShapeBall     Shape = "ball"
	ShapePuck     Shape = "puck"
)

// Side is one rectangle edge of a goal body.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// BodyData is one simulated body. A body is free, Fixed, Static, or attached
// to exactly one striker; the motion states never overlap.
type BodyData struct {
	Index int // position in the registry, stable for the session

	X, Y        float64
	Radius      float64
	HeightRatio float64 // render-only aspect factor, no collision effect
	Rotation    float64 // degrees
	Shape       Shape

	VX, VY float64

	Fixed      bool           // excluded from motion
	Static     bool           // excluded from motion, immovable in collisions
	AttachedTo *donburi.Entry // striker driving this body, nil when free
	Dragged    bool           // position set directly by drag commands

	// Goal bodies
	Goals        int
	GoalCooldown time.Time
	ActiveSide   Side // pinned on first contact, empty until then
	FlashUntil   time.Time

	// Striker bodies
	StrikerVelocity   float64 // attack impulse magnitude, 1-20
	LastStrikerAttack time.Time

	// Transient capture bookkeeping, striker side
	CaptureX, CaptureY     float64
	OriginalVX, OriginalVY float64

	// Capturable bodies: gates the post-release re-capture cooldown
	LastCaptureTime time.Time
}

var Body = donburi.NewComponentType[BodyData]()

// Speed returns the magnitude of the body's velocity.
func (b *BodyData) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
