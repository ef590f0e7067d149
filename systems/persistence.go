package systems

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/quasilyte/gdata"
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/whereismaya/bubblepit/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BodyRecord is the persisted form of one body. Optional fields are pointers
// so an absent value can be defaulted on load instead of rejecting the
// record.
type BodyRecord struct {
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Shape       *string  `json:"shape,omitempty"`
	Radius      *float64 `json:"radius,omitempty"`
	HeightRatio *float64 `json:"heightRatio,omitempty"`
	Rotation    *float64 `json:"rotation,omitempty"`

	VX float64 `json:"vx"`
	VY float64 `json:"vy"`

	Fixed  bool `json:"fixed,omitempty"`
	Static bool `json:"static,omitempty"`

	Goals      *int    `json:"goals,omitempty"`
	ActiveSide *string `json:"activeSide,omitempty"`

	StrikerVelocity *float64 `json:"strikerVelocity,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for body storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bubblepit",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// SaveBodies writes all bodies to disk in registry order.
func SaveBodies(ecs *ecs.ECS) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := EncodeBodies(ecs)
	if err != nil {
		log.Printf("Warning: Could not serialize bodies: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("bodies", data); err != nil {
		log.Printf("Warning: Could not save bodies: %v", err)
		return err
	}
	return nil
}

// LoadBodies spawns the bodies saved on disk. Returns false when no saved
// state exists.
func LoadBodies(ecs *ecs.ECS) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem("bodies")
	if err != nil {
		log.Printf("Warning: Could not load bodies: %v", err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	records, err := DecodeBodyRecords(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved bodies: %v", err)
		return false, err
	}
	for _, rec := range records {
		SpawnRecord(ecs, rec)
	}
	return true, nil
}

// EncodeBodies serializes all bodies in registry order.
func EncodeBodies(ecs *ecs.ECS) ([]byte, error) {
	var bodies []*components.BodyData
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, components.Body.Get(e))
	})
	sort.Slice(bodies, func(i, j int) bool { return bodies[i].Index < bodies[j].Index })

	records := make([]BodyRecord, 0, len(bodies))
	for _, body := range bodies {
		records = append(records, bodyRecord(body))
	}
	return json.Marshal(records)
}

func bodyRecord(body *components.BodyData) BodyRecord {
	shape := string(body.Shape)
	radius := body.Radius
	heightRatio := body.HeightRatio
	rotation := body.Rotation
	goals := body.Goals

	rec := BodyRecord{
		X:           body.X,
		Y:           body.Y,
		Shape:       &shape,
		Radius:      &radius,
		HeightRatio: &heightRatio,
		Rotation:    &rotation,
		VX:          body.VX,
		VY:          body.VY,
		Fixed:       body.Fixed,
		Static:      body.Static,
		Goals:       &goals,
	}
	if body.ActiveSide != "" {
		side := string(body.ActiveSide)
		rec.ActiveSide = &side
	}
	if body.StrikerVelocity != 0 {
		v := body.StrikerVelocity
		rec.StrikerVelocity = &v
	}
	return rec
}

// DecodeBodyRecords parses persisted records without applying defaults;
// defaulting happens when a record is spawned.
func DecodeBodyRecords(data []byte) ([]BodyRecord, error) {
	var records []BodyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SpawnRecord creates a body from a persisted record, defaulting every absent
// field: shape to circle, radius to the default, heightRatio to 1, rotation
// to 0 and goal counters to 0.
func SpawnRecord(ecs *ecs.ECS, rec BodyRecord) *donburi.Entry {
	shape := components.ShapeCircle
	if rec.Shape != nil && *rec.Shape != "" {
		shape = components.Shape(*rec.Shape)
	}
	radius := cfg.Body.DefaultRadius
	if rec.Radius != nil && *rec.Radius > 0 {
		radius = *rec.Radius
	}

	e := factory.CreateBody(ecs, rec.X, rec.Y, shape, radius)
	body := components.Body.Get(e)

	body.VX, body.VY = rec.VX, rec.VY
	body.Fixed = rec.Fixed
	body.Static = rec.Static

	if rec.HeightRatio != nil {
		body.HeightRatio = *rec.HeightRatio
	}
	if rec.Rotation != nil {
		body.Rotation = *rec.Rotation
	}
	if rec.Goals != nil {
		body.Goals = *rec.Goals
	}
	if rec.ActiveSide != nil {
		body.ActiveSide = components.Side(*rec.ActiveSide)
	}
	if rec.StrikerVelocity != nil {
		body.StrikerVelocity = gamemath.Clamp(*rec.StrikerVelocity, cfg.Attack.MinImpulse, cfg.Attack.MaxImpulse)
	}

	return e
}
