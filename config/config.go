package config

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
)

// Config holds general playfield configuration.
type Config struct {
	Width  int
	Height int

	Border    float64 // inset of the playfield on every edge
	TopOffset float64 // extra inset below the top border (toolbar strip)

	Speed float64 // default global speed multiplier
}

// BodyConfig contains spawn defaults for bodies.
type BodyConfig struct {
	DefaultRadius      float64
	DefaultHeightRatio float64

	// Random initial velocity on spawn
	MinSpawnSpeed float64
	MaxSpawnSpeed float64
}

// BallConfig contains the ball velocity normalization values. Pucks are
// deliberately left out of this clamp.
type BallConfig struct {
	Damping  float64 // near-unity per-tick velocity decay
	MinSpeed float64
	MaxSpeed float64
}

// CaptureConfig contains the striker capture state machine tuning.
type CaptureConfig struct {
	ModeDuration   time.Duration // Seeking auto-expiry when nothing attaches
	RecaptureDelay time.Duration // cooldown against re-capturing a released body
	ReleaseGrace   time.Duration // suppress collision releases right after attach

	RingScale    float64 // attach ring radius = striker radius x RingScale
	ReleaseCarry float64 // share of the striker direction added on release
}

// GoalConfig contains goal geometry and scoring values.
type GoalConfig struct {
	Cooldown      time.Duration // minimum gap between scores on one goal
	FlashDuration time.Duration

	HalfWidthScale  float64 // half-width = radius x HalfWidthScale (1:2 rectangle)
	HalfHeightScale float64 // half-height = radius x HalfHeightScale
	PushOut         float64 // extra separation past the circle radius
	MinExitSpeed    float64 // minimum speed after any goal contact
}

// AttackConfig contains the striker area attack tuning.
type AttackConfig struct {
	Cooldown time.Duration
	Duration time.Duration

	RadiusScale   float64 // effect radius = striker radius x RadiusScale
	ReachScale    float64 // hit reach = striker radius x ReachScale + body radius
	FlashDuration time.Duration

	DefaultImpulse float64 // strikerVelocity default
	MinImpulse     float64
	MaxImpulse     float64
}

// CollisionConfig contains the pairwise response tuning.
type CollisionConfig struct {
	BallDominanceShare float64 // share of the faster ball's speed imposed on the loser
	BallDominanceDecay float64 // speed kept by the faster ball
	BallFollowerShare  float64 // share of the ball's velocity given to a non-ball partner
	SpeedTolerance     float64 // speeds within this are treated as equal
}

// Global configuration instances
var C *Config
var Body BodyConfig
var Ball BallConfig
var Capture CaptureConfig
var Goal GoalConfig
var Attack AttackConfig
var Collision CollisionConfig

func init() {
	C = &Config{
		Width:     1280,
		Height:    720,
		Border:    10,
		TopOffset: 50,
		Speed:     1.0,
	}

	Body = BodyConfig{
		DefaultRadius:      80,
		DefaultHeightRatio: 1.0,
		MinSpawnSpeed:      1.0,
		MaxSpawnSpeed:      3.0,
	}

	Ball = BallConfig{
		Damping:  0.999,
		MinSpeed: 1.0,
		MaxSpeed: 8.0,
	}

	Capture = CaptureConfig{
		ModeDuration:   1000 * time.Millisecond,
		RecaptureDelay: 3000 * time.Millisecond,
		ReleaseGrace:   100 * time.Millisecond,
		RingScale:      1.5,
		ReleaseCarry:   0.5,
	}

	Goal = GoalConfig{
		Cooldown:        5000 * time.Millisecond,
		FlashDuration:   500 * time.Millisecond,
		HalfWidthScale:  0.5,
		HalfHeightScale: 1.0,
		PushOut:         1.0,
		MinExitSpeed:    2.0,
	}

	Attack = AttackConfig{
		Cooldown:       300 * time.Millisecond,
		Duration:       200 * time.Millisecond,
		RadiusScale:    1.5,
		ReachScale:     2.0,
		FlashDuration:  500 * time.Millisecond,
		DefaultImpulse: 5,
		MinImpulse:     1,
		MaxImpulse:     20,
	}

	Collision = CollisionConfig{
		BallDominanceShare: 0.8,
		BallDominanceDecay: 0.9,
		BallFollowerShare:  0.5,
		SpeedTolerance:     1e-9,
	}
}
