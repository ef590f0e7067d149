package components

import (
	"github.com/whereismaya/bubblepit/clock"
	"github.com/yohamta/donburi"
)

// SimData is the per-simulation singleton: the time source, the playfield
// bounds and the global speed multiplier.
type SimData struct {
	Clock clock.Clock

	Width, Height float64
	Border        float64
	TopOffset     float64

	Speed  float64
	Paused bool

	DragTarget *donburi.Entry // body currently driven by drag commands

	NextIndex int // next registry index handed out on spawn
}

var Sim = donburi.NewComponentType[SimData]()

// Multiplier returns the effective speed multiplier for this tick.
func (s *SimData) Multiplier() float64 {
	if s.Paused {
		return 0
	}
	return s.Speed
}

// Playfield edges.

func (s *SimData) MinX() float64 { return s.Border }
func (s *SimData) MaxX() float64 { return s.Width - s.Border }
func (s *SimData) MinY() float64 { return s.Border + s.TopOffset }
func (s *SimData) MaxY() float64 { return s.Height - s.Border }
