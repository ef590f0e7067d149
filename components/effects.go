package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FlashData tracks the transient hit cue set when an attack impulse lands.
// Consumed by the renderer only.
type FlashData struct {
	Until time.Time
}

var Flash = donburi.NewComponentType[FlashData]()
