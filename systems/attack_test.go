package systems

import (
	"testing"
	"time"

	"github.com/whereismaya/bubblepit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countAttacks(e *ecs.ECS) int {
	n := 0
	components.Attack.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestAttackImpulsesBodiesInReach(t *testing.T) {
	e, _ := newTestSim()
	strikerEntry, striker := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	striker.StrikerVelocity = 10
	_, near := spawnAt(e, 430, 300, components.ShapeCircle, 40)
	_, far := spawnAt(e, 300, 500, components.ShapeCircle, 40)

	TriggerAttack(e, strikerEntry)
	if countAttacks(e) != 1 {
		t.Fatalf("attack count = %d, want 1", countAttacks(e))
	}
	UpdateAttacks(e)

	// Reach is 50*2 + 40 = 140; the near body sits 130 away, the far one 200.
	if near.VX != 10 || near.VY != 0 {
		t.Fatalf("near body velocity = (%v, %v), want (10, 0)", near.VX, near.VY)
	}
	if far.VX != 0 || far.VY != 0 {
		t.Fatal("body outside reach must be untouched")
	}
}

func TestAttackHitsAtMostOnce(t *testing.T) {
	e, mock := newTestSim()
	strikerEntry, striker := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	striker.StrikerVelocity = 10
	_, body := spawnAt(e, 430, 300, components.ShapeCircle, 40)

	TriggerAttack(e, strikerEntry)
	UpdateAttacks(e)
	if body.VX != 10 {
		t.Fatalf("body.VX = %v, want 10", body.VX)
	}

	// Still in reach on the next tick, but already recorded.
	body.VX, body.VY = -3, 0
	mock.Advance(16 * time.Millisecond)
	UpdateAttacks(e)
	if body.VX != -3 {
		t.Fatal("a body must be impulsed at most once per activation")
	}

	// A body that wanders into reach mid-activation is still hit.
	_, late := spawnAt(e, 560, 300, components.ShapeCircle, 40)
	late.X = 430
	mock.Advance(16 * time.Millisecond)
	UpdateAttacks(e)
	if late.VX != 10 {
		t.Fatalf("late body velocity = %v, want 10", late.VX)
	}
}

func TestAttackCooldown(t *testing.T) {
	e, mock := newTestSim()
	strikerEntry, _ := spawnAt(e, 300, 300, components.ShapeStriker, 50)

	TriggerAttack(e, strikerEntry)
	TriggerAttack(e, strikerEntry)
	if countAttacks(e) != 1 {
		t.Fatalf("attack count = %d, want the second trigger gated", countAttacks(e))
	}

	mock.Advance(300 * time.Millisecond)
	TriggerAttack(e, strikerEntry)
	if countAttacks(e) != 1 {
		t.Fatal("trigger at exactly the cooldown must be gated")
	}

	mock.Advance(1 * time.Millisecond)
	TriggerAttack(e, strikerEntry)
	if countAttacks(e) != 2 {
		t.Fatal("trigger past the cooldown must spawn a new effect")
	}
}

func TestAttackExpires(t *testing.T) {
	e, mock := newTestSim()
	strikerEntry, _ := spawnAt(e, 300, 300, components.ShapeStriker, 50)

	TriggerAttack(e, strikerEntry)

	mock.Advance(199 * time.Millisecond)
	UpdateAttacks(e)
	if countAttacks(e) != 1 {
		t.Fatal("attack must stay live just under the duration")
	}

	mock.Advance(1 * time.Millisecond)
	UpdateAttacks(e)
	if countAttacks(e) != 0 {
		t.Fatal("attack must be discarded at the duration")
	}
}

func TestAttackCenterStaysFixed(t *testing.T) {
	e, mock := newTestSim()
	strikerEntry, striker := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	striker.StrikerVelocity = 10

	TriggerAttack(e, strikerEntry)
	striker.X = 600

	// The effect keeps the spawn-time center, so a body near the striker's
	// new position is out of reach while one near the old center is hit.
	_, nearOld := spawnAt(e, 430, 300, components.ShapeCircle, 40)
	_, nearNew := spawnAt(e, 700, 300, components.ShapeCircle, 40)
	mock.Advance(16 * time.Millisecond)
	UpdateAttacks(e)

	if nearOld.VX != 10 {
		t.Fatalf("body near the spawn center got %v, want 10", nearOld.VX)
	}
	if nearNew.VX != 0 {
		t.Fatal("body near the moved striker must be out of reach")
	}
}

func TestAttackFlagsStaticWithoutImpulse(t *testing.T) {
	e, _ := newTestSim()
	strikerEntry, _ := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	wallEntry, wall := spawnAt(e, 430, 300, components.ShapeSquare, 40)
	wall.Static = true

	TriggerAttack(e, strikerEntry)
	UpdateAttacks(e)

	if wall.VX != 0 || wall.VY != 0 {
		t.Fatal("static body must not receive an impulse")
	}
	if components.Flash.Get(wallEntry).Until.IsZero() {
		t.Fatal("static body in reach must still flash")
	}
}

func TestAttackBreaksCapture(t *testing.T) {
	e, mock := newTestSim()
	strikerEntry, _ := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	_, target := spawnAt(e, 360, 300, components.ShapeCircle, 20)

	BeginCapture(e, strikerEntry)
	UpdateCaptureSeek(e)
	capture := captureState(e)
	if capture.Captured == nil {
		t.Fatal("expected a captured body")
	}

	mock.Advance(500 * time.Millisecond)
	TriggerAttack(e, strikerEntry)

	if capture.Captured != nil {
		t.Fatal("an attack must break a live capture")
	}
	if target.AttachedTo != nil {
		t.Fatal("the held body must be detached")
	}
	if !target.LastCaptureTime.Equal(tickNow(e)) {
		t.Fatal("the forced release must arm the re-capture cooldown")
	}
}
