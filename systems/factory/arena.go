package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena spawns the immutable geometry singleton for this world.
func CreateArena(ecs *ecs.ECS, arena cfg.ArenaConfig) *donburi.Entry {
	e := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(e, components.ArenaData{ArenaConfig: arena})
	return e
}
