package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(e, components.CameraData{
		Position: math.Vec2{X: 0, Y: cfg.Camera.EyeHeight},
	})
	return e
}
