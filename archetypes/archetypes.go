package archetypes

import (
	"github.com/whereismaya/bubblepit/components"
	cfg "github.com/whereismaya/bubblepit/config"
	"github.com/whereismaya/bubblepit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sim = newArchetype(
		components.Sim,
		components.Capture,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Body,
		components.Flash,
	)
	Striker = newArchetype(
		tags.Striker,
		components.Body,
		components.Flash,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Body,
		components.Flash,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Body,
		components.Flash,
	)
	Puck = newArchetype(
		tags.Puck,
		components.Body,
		components.Flash,
	)
	AttackEffect = newArchetype(
		tags.AttackEffect,
		components.Attack,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
