package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns one paddle at its fixed along-width position,
// centered laterally. The paddle straddles the arena edge so the ball
// meets its inner face exactly at the collision plane.
func CreatePaddle(ecs *ecs.ECS, arena *components.ArenaData, space *resolv.Space, side cfg.Side) *donburi.Entry {
	var e *donburi.Entry
	axial := arena.Width / 2
	rate := arena.AITrackRate
	if side == cfg.SidePlayer {
		e = archetypes.PlayerPaddle.Spawn(ecs)
		axial = -axial
		rate = arena.PaddleMoveSpeed
	} else {
		e = archetypes.AIPaddle.Spawn(ecs)
	}

	components.Paddle.SetValue(e, components.PaddleData{
		Side:  side,
		Axial: axial,
		Rate:  rate,
	})

	cx, cy := ToCourt(arena, axial, 0)
	obj := resolv.NewObject(
		cx-arena.PaddleDepth/2, cy-arena.PaddleExtent/2,
		arena.PaddleDepth, arena.PaddleExtent,
		tags.ResolvPaddle,
	)
	obj.Data = e
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	return e
}
