package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// CaptureData is the striker capture state machine. Exactly one instance lives
// on the simulation singleton: Idle (Mode false), Seeking (Mode true, nothing
// captured) and Attached (Captured set).
type CaptureData struct {
	Mode      bool
	Striker   *donburi.Entry
	Captured  *donburi.Entry
	ModeStart time.Time

	CaptureTime  time.Time // attach moment, gates the release grace period
	CaptureAngle float64   // striker-to-body angle at attach, radians

	// Striker velocity tracked while a capture is live, carried into the
	// release velocity.
	LastDirX, LastDirY float64

	// CollisionFlag marks a release requested by the collision passes. The
	// follow pass drains it once per release.
	CollisionFlag bool
}

var Capture = donburi.NewComponentType[CaptureData]()
