package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/whereismaya/bubblepit/clock"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/systems"
	"github.com/whereismaya/bubblepit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene owns the simulation ECS and drives one tick per frame.
type ArenaScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewArenaScene creates the playfield scene.
func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.RunTick)

	e.AddRenderer(cfg.Default, systems.DrawArena)

	as.ecs = e

	factory.CreateSim(e, clock.NewSystem())

	if loaded, _ := systems.LoadBodies(e); loaded {
		return
	}
	as.seed()
}

// seed populates a fresh playfield when no saved bodies exist.
func (as *ArenaScene) seed() {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)

	factory.CreateStriker(as.ecs, w*0.25, h*0.5, 50)
	factory.CreateGoal(as.ecs, w*0.85, h*0.5, 120)
	factory.CreateBall(as.ecs, w*0.5, h*0.5, 20)
	factory.CreateBody(as.ecs, w*0.4, h*0.35, "circle", 60)
	factory.CreateBody(as.ecs, w*0.6, h*0.65, "square", 45)
	factory.CreateBody(as.ecs, w*0.55, h*0.3, "hexagon", 40)
}
