package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(e, components.ClockData{
		Delta: 1.0 / 60.0,
	})
	return e
}
