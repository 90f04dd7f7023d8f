package systems

import (
	"github.com/automoto/reefpong/components"
	"github.com/automoto/reefpong/systems/factory"
	"github.com/yohamta/donburi"
)

// syncBallObject moves the ball's collision object to the current
// simulation position and re-registers it in the space.
func syncBallObject(entry *donburi.Entry, ball *components.BallData, arena *components.ArenaData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	cx, cy := factory.ToCourt(arena, ball.Pos.X, ball.Pos.Y)
	obj.X = cx - arena.BallRadius
	obj.Y = cy - arena.BallRadius
	obj.Update()
}

// syncPaddleObject moves a paddle's collision object under its lateral
// position.
func syncPaddleObject(entry *donburi.Entry, paddle *components.PaddleData, arena *components.ArenaData) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	cx, cy := factory.ToCourt(arena, paddle.Axial, paddle.Lateral)
	obj.X = cx - arena.PaddleDepth/2
	obj.Y = cy - arena.PaddleExtent/2
	obj.Update()
}
