package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AttackData is a transient area-of-effect impulse source created by a
// striker. The center is fixed at creation; the effect expires on its own.
type AttackData struct {
	Owner       *donburi.Entry
	OwnerRadius float64 // striker radius at creation
	X, Y        float64
	Radius      float64
	Created     time.Time

	// Bodies already hit by this activation; each body takes at most one
	// impulse per effect.
	Hit map[*donburi.Entry]struct{}
}

var Attack = donburi.NewComponentType[AttackData]()
