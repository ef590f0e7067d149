package systems

import (
	"sort"

	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodySnapshot is the read-only per-frame view of one body, consumed by the
// rendering and scoreboard collaborators.
type BodySnapshot struct {
	Index       int
	X, Y        float64
	Radius      float64
	HeightRatio float64
	Rotation    float64
	Shape       components.Shape

	Static   bool
	Captured bool

	Goals      int
	ActiveSide components.Side
	GoalFlash  bool

	HitFlash     bool
	HitFlashLeft float64 // remaining share of the hit cue, 0..1, for fades
}

// Snapshot copies all bodies into a slice ordered by registry index.
func Snapshot(ecs *ecs.ECS) []BodySnapshot {
	now := tickNow(ecs)

	var out []BodySnapshot
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		s := BodySnapshot{
			Index:       body.Index,
			X:           body.X,
			Y:           body.Y,
			Radius:      body.Radius,
			HeightRatio: body.HeightRatio,
			Rotation:    body.Rotation,
			Shape:       body.Shape,
			Static:      body.Static,
			Captured:    body.AttachedTo != nil,
			Goals:       body.Goals,
			ActiveSide:  body.ActiveSide,
			GoalFlash:   body.FlashUntil.After(now),
		}
		if e.HasComponent(components.Flash) {
			if until := components.Flash.Get(e).Until; until.After(now) {
				s.HitFlash = true
				s.HitFlashLeft = float64(until.Sub(now)) / float64(cfg.Attack.FlashDuration)
			}
		}
		out = append(out, s)
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
