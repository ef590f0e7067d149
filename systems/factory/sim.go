package factory

import (
	"github.com/whereismaya/bubblepit/archetypes"
	"github.com/whereismaya/bubblepit/clock"
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSim spawns the singleton simulation entity holding the clock, the
// playfield bounds and the capture state. Every simulation needs exactly one.
func CreateSim(ecs *ecs.ECS, clk clock.Clock) *donburi.Entry {
	e := archetypes.Sim.Spawn(ecs)
	components.Sim.SetValue(e, components.SimData{
		Clock:     clk,
		Width:     float64(cfg.C.Width),
		Height:    float64(cfg.C.Height),
		Border:    cfg.C.Border,
		TopOffset: cfg.C.TopOffset,
		Speed:     cfg.C.Speed,
	})
	return e
}
