package systems

import (
	"math"
	"time"

	"github.com/whereismaya/bubblepit/archetypes"
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerAttack creates an attack effect centered on the striker's current
// position. The per-striker cooldown gates it; an attack always breaks a live
// capture first.
func TriggerAttack(ecs *ecs.ECS, striker *donburi.Entry) {
	if striker == nil || !striker.Valid() || !striker.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(striker)
	if body.Shape != components.ShapeStriker {
		return
	}

	now := tickNow(ecs)
	if !body.LastStrikerAttack.IsZero() && !now.After(body.LastStrikerAttack.Add(cfg.Attack.Cooldown)) {
		return
	}

	capture := captureState(ecs)
	if capture.Captured != nil {
		releaseOnCollision(capture, now)
	}

	e := archetypes.AttackEffect.Spawn(ecs)
	components.Attack.SetValue(e, components.AttackData{
		Owner:       striker,
		OwnerRadius: body.Radius,
		X:           body.X,
		Y:           body.Y,
		Radius:      body.Radius * cfg.Attack.RadiusScale,
		Created:     now,
		Hit:         make(map[*donburi.Entry]struct{}),
	})
	body.LastStrikerAttack = now
}

// UpdateAttacks applies impulses for live attack effects and discards the
// expired ones.
func UpdateAttacks(ecs *ecs.ECS) {
	now := tickNow(ecs)

	var expired []*donburi.Entry
	components.Attack.Each(ecs.World, func(e *donburi.Entry) {
		attack := components.Attack.Get(e)
		if attack.Owner == nil || !attack.Owner.Valid() {
			expired = append(expired, e)
			return
		}
		if now.Sub(attack.Created) >= cfg.Attack.Duration {
			expired = append(expired, e)
			return
		}
		applyAttackHits(ecs, attack, now)
	})

	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}

// applyAttackHits impulses every body inside the effect's reach exactly once
// per activation, pushing it straight away from the fixed effect center.
func applyAttackHits(ecs *ecs.ECS, attack *components.AttackData, now time.Time) {
	owner := components.Body.Get(attack.Owner)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if e == attack.Owner {
			return
		}
		if _, done := attack.Hit[e]; done {
			return
		}

		body := components.Body.Get(e)
		reach := attack.OwnerRadius*cfg.Attack.ReachScale + body.Radius
		if math.Hypot(body.X-attack.X, body.Y-attack.Y) >= reach {
			return
		}

		attack.Hit[e] = struct{}{}
		if e.HasComponent(components.Flash) {
			components.Flash.Get(e).Until = now.Add(cfg.Attack.FlashDuration)
		}
		if body.Static {
			return
		}

		nx, ny := gamemath.Normalize(body.X-attack.X, body.Y-attack.Y)
		body.VX = owner.StrikerVelocity * nx
		body.VY = owner.StrikerVelocity * ny
	})
}
