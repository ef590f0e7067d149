package systems

import (
	"math"
	"time"

	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BeginCapture puts the capture state machine into Seeking for the given
// striker. A Seeking period that attaches nothing expires on its own after
// the mode duration.
func BeginCapture(ecs *ecs.ECS, striker *donburi.Entry) {
	capture := captureState(ecs)
	if capture.Captured != nil {
		return
	}
	if striker == nil || !striker.Valid() || !striker.HasComponent(components.Body) {
		return
	}
	if components.Body.Get(striker).Shape != components.ShapeStriker {
		return
	}

	capture.Mode = true
	capture.Striker = striker
	capture.ModeStart = tickNow(ecs)
	capture.CollisionFlag = false
}

// EndCapture releases an attached body, choosing the release path by context:
// a collision recorded since the attach keeps the collision release, otherwise
// the body snaps back to the last capture point. Without an attached body it
// just cancels Seeking.
func EndCapture(ecs *ecs.ECS) {
	capture := captureState(ecs)
	if capture.Captured == nil {
		capture.Mode = false
		capture.Striker = nil
		return
	}

	now := tickNow(ecs)
	if capture.CollisionFlag {
		releaseOnCollision(capture, now)
		return
	}
	releaseAtCapturePoint(capture)
}

// UpdateCaptureSeek expires stale Seeking periods, attaches the first body in
// range, and scans a live capture for overlaps that force a collision
// release.
func UpdateCaptureSeek(ecs *ecs.ECS) {
	capture := captureState(ecs)
	now := tickNow(ecs)

	if capture.Mode && capture.Captured == nil {
		switch {
		case capture.Striker == nil || !capture.Striker.Valid():
			capture.Mode = false
			capture.Striker = nil
		case now.Sub(capture.ModeStart) > cfg.Capture.ModeDuration:
			capture.Mode = false
			capture.Striker = nil
		default:
			seize(ecs, capture, now)
		}
	}

	if capture.Captured != nil {
		checkReleaseOverlaps(ecs, capture, now)
	}
}

// seize attaches the first eligible body within the striker's capture ring.
// First match wins; there is no distance tie-break.
func seize(ecs *ecs.ECS, capture *components.CaptureData, now time.Time) {
	striker := components.Body.Get(capture.Striker)
	ring := striker.Radius * cfg.Capture.RingScale

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if capture.Captured != nil || e == capture.Striker {
			return
		}
		body := components.Body.Get(e)
		if body.Static || body.Fixed || body.AttachedTo != nil {
			return
		}
		if !body.LastCaptureTime.IsZero() && now.Sub(body.LastCaptureTime) <= cfg.Capture.RecaptureDelay {
			return
		}

		dx := body.X - striker.X
		dy := body.Y - striker.Y
		if math.Hypot(dx, dy) > ring {
			return
		}

		angle := math.Atan2(dy, dx)
		striker.OriginalVX, striker.OriginalVY = body.VX, body.VY
		striker.CaptureX = striker.X + math.Cos(angle)*ring
		striker.CaptureY = striker.Y + math.Sin(angle)*ring

		body.X, body.Y = striker.CaptureX, striker.CaptureY
		body.VX, body.VY = 0, 0
		body.AttachedTo = capture.Striker

		capture.Captured = e
		capture.CaptureAngle = angle
		capture.CaptureTime = now
		capture.LastDirX, capture.LastDirY = striker.VX, striker.VY
		capture.CollisionFlag = false
	})
}

// checkReleaseOverlaps requests a collision release when any third body
// overlaps the captured body or its striker.
func checkReleaseOverlaps(ecs *ecs.ECS, capture *components.CaptureData, now time.Time) {
	if capture.CollisionFlag {
		return
	}
	captured := components.Body.Get(capture.Captured)
	striker := components.Body.Get(capture.Striker)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if capture.CollisionFlag {
			return
		}
		if e == capture.Captured || e == capture.Striker {
			return
		}
		other := components.Body.Get(e)
		if overlaps(other, captured) || overlaps(other, striker) {
			requestCaptureRelease(capture, now)
		}
	})
}

// requestCaptureRelease flags the live capture for a collision release. The
// grace period after the attach moment suppresses the release that the
// capture-moment overlap itself would trigger.
func requestCaptureRelease(capture *components.CaptureData, now time.Time) {
	if capture.Captured == nil || capture.CollisionFlag {
		return
	}
	if !now.After(capture.CaptureTime.Add(cfg.Capture.ReleaseGrace)) {
		return
	}
	capture.CollisionFlag = true
}

// UpdateCaptureFollow pins the captured body to the striker's capture ring at
// the original attach angle, and performs releases requested by the collision
// passes.
func UpdateCaptureFollow(ecs *ecs.ECS) {
	capture := captureState(ecs)
	if capture.Captured == nil {
		return
	}
	if !capture.Captured.Valid() || capture.Striker == nil || !capture.Striker.Valid() {
		capture.Captured = nil
		capture.Striker = nil
		capture.Mode = false
		capture.CollisionFlag = false
		return
	}

	if capture.CollisionFlag {
		releaseOnCollision(capture, tickNow(ecs))
		return
	}

	striker := components.Body.Get(capture.Striker)
	captured := components.Body.Get(capture.Captured)

	ring := striker.Radius * cfg.Capture.RingScale
	striker.CaptureX = striker.X + math.Cos(capture.CaptureAngle)*ring
	striker.CaptureY = striker.Y + math.Sin(capture.CaptureAngle)*ring
	captured.X, captured.Y = striker.CaptureX, striker.CaptureY
	capture.LastDirX, capture.LastDirY = striker.VX, striker.VY
}

// releaseOnCollision is the collision release: the captured body gets its
// original velocity back plus a share of the striker's last direction, and
// the re-capture cooldown is armed.
func releaseOnCollision(capture *components.CaptureData, now time.Time) {
	striker := components.Body.Get(capture.Striker)
	captured := components.Body.Get(capture.Captured)

	captured.VX = striker.OriginalVX + cfg.Capture.ReleaseCarry*capture.LastDirX
	captured.VY = striker.OriginalVY + cfg.Capture.ReleaseCarry*capture.LastDirY
	captured.AttachedTo = nil
	captured.LastCaptureTime = now

	clearCapture(capture, striker)
}

// releaseAtCapturePoint is the clean release: the body snaps to the last
// recorded capture point before the same velocity restoration, and no
// re-capture cooldown is armed.
func releaseAtCapturePoint(capture *components.CaptureData) {
	striker := components.Body.Get(capture.Striker)
	captured := components.Body.Get(capture.Captured)

	captured.X, captured.Y = striker.CaptureX, striker.CaptureY
	captured.VX = striker.OriginalVX + cfg.Capture.ReleaseCarry*capture.LastDirX
	captured.VY = striker.OriginalVY + cfg.Capture.ReleaseCarry*capture.LastDirY
	captured.AttachedTo = nil

	clearCapture(capture, striker)
}

func clearCapture(capture *components.CaptureData, striker *components.BodyData) {
	striker.CaptureX, striker.CaptureY = 0, 0
	striker.OriginalVX, striker.OriginalVY = 0, 0

	capture.Mode = false
	capture.Striker = nil
	capture.Captured = nil
	capture.CollisionFlag = false
	capture.LastDirX, capture.LastDirY = 0, 0
}
