package archetypes

import (
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arena = newArchetype(
		components.Arena,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
	)
	PlayerPaddle = newArchetype(
		tags.PlayerPaddle,
		components.Paddle,
		components.Object,
	)
	AIPaddle = newArchetype(
		tags.AIPaddle,
		components.Paddle,
		components.Object,
	)
	Match = newArchetype(
		components.Match,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Bubble,
		components.Tween,
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
