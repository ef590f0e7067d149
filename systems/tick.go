package systems

import "github.com/yohamta/donburi/ecs"

// RunTick advances the simulation by one frame. The order is fixed: motion,
// boundaries, ball normalization, capture seek and release checks, goal
// scoring, pairwise collisions, capture follow, attack effects. Every system
// reads and writes the same body registry synchronously; nothing here blocks.
func RunTick(ecs *ecs.ECS) {
	UpdateMotion(ecs)
	UpdateBoundary(ecs)
	UpdateBallSpeed(ecs)
	UpdateCaptureSeek(ecs)
	UpdateGoals(ecs)
	UpdateCollisions(ecs)
	UpdateCaptureFollow(ecs)
	UpdateAttacks(ecs)
}
