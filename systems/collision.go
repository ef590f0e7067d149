package systems

import (
	"math"
	"time"

	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions runs the pairwise scan over all distinct body pairs,
// skipping attached bodies. Body counts stay in the tens, so the O(n^2) pass
// is fine. The response rules are deliberately not momentum-conserving.
func UpdateCollisions(ecs *ecs.ECS) {
	capture := captureState(ecs)
	now := tickNow(ecs)

	var entries []*donburi.Entry
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if components.Body.Get(e).AttachedTo != nil {
			return
		}
		entries = append(entries, e)
	})

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			resolvePair(capture, now, entries[i], entries[j])
		}
	}
}

func resolvePair(capture *components.CaptureData, now time.Time, ea, eb *donburi.Entry) {
	a := components.Body.Get(ea)
	b := components.Body.Get(eb)

	sum := a.Radius + b.Radius
	if math.Hypot(b.X-a.X, b.Y-a.Y) >= sum {
		return
	}

	// A striker carrying a capture that hits anything else forces a
	// collision release.
	if capture.Captured != nil && (ea == capture.Striker || eb == capture.Striker) {
		requestCaptureRelease(capture, now)
	}

	switch {
	case a.Static && b.Static:
		return
	case a.Static:
		pushOut(a, b, sum)
		b.VX, b.VY = -b.VX, -b.VY
	case b.Static:
		pushOut(b, a, sum)
		a.VX, a.VY = -a.VX, -a.VY
	case a.Shape == components.ShapeBall && b.Shape == components.ShapeBall:
		resolveBallPair(a, b)
	case a.Shape == components.ShapeBall || b.Shape == components.ShapeBall:
		resolveBallOther(a, b)
	default:
		pushOut(a, b, sum)
		a.VX, a.VY, b.VX, b.VY = b.VX, b.VY, a.VX, a.VY
	}
}

// pushOut repositions b on the contact circle around a, along the collision
// angle between the two centers. Coincident centers resolve along atan2(0,0),
// a fixed direction.
func pushOut(a, b *components.BodyData, sum float64) {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	b.X = a.X + math.Cos(angle)*sum
	b.Y = a.Y + math.Sin(angle)*sum
}

// resolveBallPair applies the ball dominance rule: the faster ball imposes
// its direction on the other at a share of its own speed and decays itself;
// equal speeds swap velocities outright.
func resolveBallPair(a, b *components.BodyData) {
	sa, sb := a.Speed(), b.Speed()
	switch {
	case math.Abs(sa-sb) <= cfg.Collision.SpeedTolerance:
		a.VX, a.VY, b.VX, b.VY = b.VX, b.VY, a.VX, a.VY
	case sa > sb:
		dominate(a, b, sa)
	default:
		dominate(b, a, sb)
	}
}

func dominate(fast, slow *components.BodyData, speed float64) {
	nx, ny := gamemath.Normalize(fast.VX, fast.VY)
	slow.VX = nx * speed * cfg.Collision.BallDominanceShare
	slow.VY = ny * speed * cfg.Collision.BallDominanceShare
	fast.VX *= cfg.Collision.BallDominanceDecay
	fast.VY *= cfg.Collision.BallDominanceDecay
}

// resolveBallOther handles a ball against any non-ball body: the ball adopts
// whichever of the two velocities is larger in magnitude, the other body
// follows at half the ball's resulting velocity.
func resolveBallOther(a, b *components.BodyData) {
	ball, other := a, b
	if b.Shape == components.ShapeBall {
		ball, other = b, a
	}
	if other.Speed() > ball.Speed() {
		ball.VX, ball.VY = other.VX, other.VY
	}
	other.VX = ball.VX * cfg.Collision.BallFollowerShare
	other.VY = ball.VY * cfg.Collision.BallFollowerShare
}
