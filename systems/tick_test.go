package systems

import (
	"testing"
	"time"

	"github.com/whereismaya/bubblepit/components"
)

func TestTickIntegratesThenContains(t *testing.T) {
	e, mock := newTestSim()
	_, body := spawnAt(e, 1265, 300, components.ShapeCircle, 20)
	body.VX = 10

	mock.Advance(16 * time.Millisecond)
	RunTick(e)

	// Integration would put the center at 1275; containment runs in the same
	// tick and clamps it back to the edge with the velocity flipped.
	if body.X != 1270-20 {
		t.Fatalf("body.X = %v, want clamped to 1250", body.X)
	}
	if body.VX != -10 {
		t.Fatalf("body.VX = %v, want reflected", body.VX)
	}
}

func TestTickPausedLeavesStateUntouched(t *testing.T) {
	e, mock := newTestSim()
	_, body := spawnAt(e, 300, 300, components.ShapeCircle, 20)
	body.VX, body.VY = 5, 5
	SetPaused(e, true)

	for i := 0; i < 10; i++ {
		mock.Advance(16 * time.Millisecond)
		RunTick(e)
	}

	if body.X != 300 || body.Y != 300 {
		t.Fatalf("paused body moved to (%v, %v)", body.X, body.Y)
	}
}

func TestTickDeterminism(t *testing.T) {
	run := func() []BodySnapshot {
		e, mock := newTestSim()
		_, a := spawnAt(e, 200, 200, components.ShapeBall, 20)
		a.VX, a.VY = 4, 3
		_, b := spawnAt(e, 400, 200, components.ShapeCircle, 30)
		b.VX, b.VY = -2, 1
		_, c := spawnAt(e, 300, 400, components.ShapePuck, 25)
		c.VX, c.VY = 1, -6

		for i := 0; i < 300; i++ {
			mock.Advance(16 * time.Millisecond)
			RunTick(e)
		}
		return Snapshot(e)
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}
