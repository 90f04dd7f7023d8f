package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	"github.com/automoto/reefpong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns the ball at the arena center with zero velocity;
// the first serve comes from StartMatch.
func CreateBall(ecs *ecs.ECS, arena *components.ArenaData, space *resolv.Space) *donburi.Entry {
	e := archetypes.Ball.Spawn(ecs)
	components.Ball.SetValue(e, components.BallData{})

	cx, cy := ToCourt(arena, 0, 0)
	r := arena.BallRadius
	obj := resolv.NewObject(cx-r, cy-r, 2*r, 2*r, tags.ResolvBall)
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	return e
}
