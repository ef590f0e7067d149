package tags

import "github.com/yohamta/donburi"

var (
	Bubble       = donburi.NewTag().SetName("Bubble")
	Striker      = donburi.NewTag().SetName("Striker")
	Goal         = donburi.NewTag().SetName("Goal")
	Ball         = donburi.NewTag().SetName("Ball")
	Puck         = donburi.NewTag().SetName("Puck")
	AttackEffect = donburi.NewTag().SetName("AttackEffect")
)
