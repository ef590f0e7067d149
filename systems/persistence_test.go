package systems

import (
	"sort"
	"testing"

	"github.com/whereismaya/bubblepit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func bodiesByIndex(e *ecs.ECS) []*components.BodyData {
	var bodies []*components.BodyData
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		bodies = append(bodies, components.Body.Get(entry))
	})
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].Index < bodies[j].Index })
	return bodies
}

func TestSpawnRecordDefaults(t *testing.T) {
	e, _ := newTestSim()

	records, err := DecodeBodyRecords([]byte(`[{"x": 120, "y": 240}]`))
	if err != nil {
		t.Fatalf("DecodeBodyRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want 1", len(records))
	}

	body := components.Body.Get(SpawnRecord(e, records[0]))
	if body.X != 120 || body.Y != 240 {
		t.Fatalf("position = (%v, %v), want (120, 240)", body.X, body.Y)
	}
	if body.Shape != components.ShapeCircle {
		t.Fatalf("shape = %q, want circle", body.Shape)
	}
	if body.Radius != 80 {
		t.Fatalf("radius = %v, want the default 80", body.Radius)
	}
	if body.HeightRatio != 1 || body.Rotation != 0 || body.Goals != 0 {
		t.Fatalf("heightRatio=%v rotation=%v goals=%v, want 1/0/0", body.HeightRatio, body.Rotation, body.Goals)
	}
	if body.VX != 0 || body.VY != 0 {
		t.Fatal("records without velocity must spawn at rest")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e, _ := newTestSim()
	_, striker := spawnAt(e, 300, 300, components.ShapeStriker, 50)
	striker.StrikerVelocity = 12
	_, goal := spawnAt(e, 900, 400, components.ShapeGoal, 120)
	goal.Static = true
	goal.Goals = 3
	goal.ActiveSide = components.SideLeft
	_, ball := spawnAt(e, 500, 500, components.ShapeBall, 20)
	ball.VX, ball.VY = 2, -3

	data, err := EncodeBodies(e)
	if err != nil {
		t.Fatalf("EncodeBodies: %v", err)
	}
	records, err := DecodeBodyRecords(data)
	if err != nil {
		t.Fatalf("DecodeBodyRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want 3", len(records))
	}

	loaded, _ := newTestSim()
	for _, rec := range records {
		SpawnRecord(loaded, rec)
	}
	bodies := bodiesByIndex(loaded)
	if len(bodies) != 3 {
		t.Fatalf("spawned %d bodies, want 3", len(bodies))
	}

	if bodies[0].Shape != components.ShapeStriker || bodies[0].StrikerVelocity != 12 {
		t.Fatalf("striker = %q impulse %v, want striker/12", bodies[0].Shape, bodies[0].StrikerVelocity)
	}
	if bodies[1].Shape != components.ShapeGoal || !bodies[1].Static {
		t.Fatalf("goal = %q static=%v, want goal/static", bodies[1].Shape, bodies[1].Static)
	}
	if bodies[1].Goals != 3 || bodies[1].ActiveSide != components.SideLeft {
		t.Fatalf("goal counters = %d/%q, want 3/left", bodies[1].Goals, bodies[1].ActiveSide)
	}
	if bodies[2].Shape != components.ShapeBall || bodies[2].VX != 2 || bodies[2].VY != -3 {
		t.Fatalf("ball = %q (%v, %v), want ball with (2, -3)", bodies[2].Shape, bodies[2].VX, bodies[2].VY)
	}
	if bodies[2].X != 500 || bodies[2].Y != 500 || bodies[2].Radius != 20 {
		t.Fatalf("ball spawned at (%v, %v) r%v, want (500, 500) r20", bodies[2].X, bodies[2].Y, bodies[2].Radius)
	}
}

func TestSpawnRecordPreservesUnknownShape(t *testing.T) {
	e, _ := newTestSim()

	records, err := DecodeBodyRecords([]byte(`[{"x": 10, "y": 20, "shape": "rhombus", "radius": 30}]`))
	if err != nil {
		t.Fatalf("DecodeBodyRecords: %v", err)
	}
	body := components.Body.Get(SpawnRecord(e, records[0]))
	if body.Shape != components.Shape("rhombus") {
		t.Fatalf("shape = %q, want the unknown name preserved", body.Shape)
	}
	if body.Radius != 30 {
		t.Fatalf("radius = %v, want 30", body.Radius)
	}
}

func TestSpawnRecordClampsStrikerImpulse(t *testing.T) {
	e, _ := newTestSim()

	records, err := DecodeBodyRecords([]byte(`[{"x": 10, "y": 20, "shape": "striker", "strikerVelocity": 50}]`))
	if err != nil {
		t.Fatalf("DecodeBodyRecords: %v", err)
	}
	body := components.Body.Get(SpawnRecord(e, records[0]))
	if body.StrikerVelocity != 20 {
		t.Fatalf("impulse = %v, want clamped to 20", body.StrikerVelocity)
	}
}

func TestDecodeBodyRecordsRejectsGarbage(t *testing.T) {
	if _, err := DecodeBodyRecords([]byte(`{"not": "a list"}`)); err == nil {
		t.Fatal("expected an error for a non-array payload")
	}
}
