package systems

import (
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/gamemath"
	"github.com/automoto/reefpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MovePlayer applies one discrete move intent to the player paddle's
// target position. The target is clamped immediately; the collidable
// position catches up over the following frames. No-op outside the
// playing phase.
func MovePlayer(e *ecs.ECS, dir cfg.MoveDirection) {
	if !IsPlaying(e) || IsPaused(e) {
		return
	}
	entry, ok := tags.PlayerPaddle.First(e.World)
	if !ok {
		return
	}
	paddle := components.Paddle.Get(entry)
	arena := arenaOf(e)

	step := arena.PaddleStep
	if dir == cfg.MoveDown {
		step = -step
	}
	limit := arena.LateralLimit()
	paddle.Target = gamemath.Clamp(paddle.Target+step, -limit, limit)
}

// UpdatePaddles advances both paddles toward their targets. The AI
// retargets the ball's lateral position every frame but smooths at its
// slower rate, so it cannot react instantaneously. Exponential approach
// converges without overshooting the clamped target.
func UpdatePaddles(e *ecs.ECS) {
	arena := arenaOf(e)
	dt := Delta(e)
	limit := arena.LateralLimit()

	var ballLateral float64
	if ballEntry, ok := components.Ball.First(e.World); ok {
		ballLateral = components.Ball.Get(ballEntry).Pos.Y
	}

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)

		if paddle.Side == cfg.SideAI {
			paddle.Target = gamemath.Clamp(ballLateral, -limit, limit)
		}

		paddle.Lateral = gamemath.Approach(paddle.Lateral, paddle.Target, paddle.Rate, dt)
		paddle.Lateral = gamemath.Clamp(paddle.Lateral, -limit, limit)

		syncPaddleObject(entry, paddle, arena)
	})
}
