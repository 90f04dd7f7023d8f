package systems

import (
	"math/rand"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/gamemath"
	"github.com/automoto/reefpong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Serve randomness. Fixed seed for reproducible sessions.
var rng = rand.New(rand.NewSource(42))

// UpdateBall advances the ball one frame: Euler integration, wall
// reflection, paddle collision, scoring. Collisions are discrete
// post-integration checks, not swept; tunneling at extreme speed with a
// stalled frame is bounded by the clock's delta clamp. Publishes at most
// one score event per call.
func UpdateBall(e *ecs.ECS) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	arena := arenaOf(e)
	dt := Delta(e)

	// Integrate
	ball.Pos.X += ball.Vel.X * dt
	ball.Pos.Y += ball.Vel.Y * dt

	// Wall reflection on the lateral axis, perfectly elastic
	wallLimit := arena.Height/2 - arena.BallRadius
	if ball.Pos.Y > wallLimit {
		ball.Pos.Y = wallLimit
		ball.Vel.Y = -ball.Vel.Y
		PlaySFX(e, cfg.SoundWallBounce)
	} else if ball.Pos.Y < -wallLimit {
		ball.Pos.Y = -wallLimit
		ball.Vel.Y = -ball.Vel.Y
		PlaySFX(e, cfg.SoundWallBounce)
	}

	resolvePaddleHit(e, ballEntry, ball, arena)

	// Scoring: the ball must pass the arena edge by the margin, not just
	// the paddle plane, before the point counts.
	scoreLine := arena.Width/2 + arena.ScoreMargin
	if ball.Pos.X > scoreLine {
		components.ScoreEvent.Publish(e.World, components.ScoreEventData{Side: cfg.SidePlayer})
		serve(ball, arena, -1)
		PlaySFX(e, cfg.SoundScore)
	} else if ball.Pos.X < -scoreLine {
		components.ScoreEvent.Publish(e.World, components.ScoreEventData{Side: cfg.SideAI})
		serve(ball, arena, 1)
		PlaySFX(e, cfg.SoundScore)
	}

	// Bound the lateral speed so spin cannot escalate forever
	ball.Vel.Y = gamemath.ClampSpeed(ball.Vel.Y, arena.MaxLateralSpeed())

	syncBallObject(ballEntry, ball, arena)
}

// resolvePaddleHit reflects the ball off a paddle it has crossed into.
// The space lookup is the broad phase; the exact band test matches the
// paddle box grown by the ball radius.
func resolvePaddleHit(e *ecs.ECS, ballEntry *donburi.Entry, ball *components.BallData, arena *components.ArenaData) {
	if !ballEntry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(ballEntry)
	if obj.Object == nil {
		return
	}

	syncBallObject(ballEntry, ball, arena)
	check := obj.Check(0, 0, tags.ResolvPaddle)
	if check == nil {
		return
	}

	for _, candidate := range check.ObjectsByTags(tags.ResolvPaddle) {
		paddleEntry, ok := candidate.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		paddle := components.Paddle.Get(paddleEntry)

		// Only a ball traveling into this paddle's end can hit it; a
		// just-reflected ball still inside the band is left alone.
		if paddle.Axial > 0 != (ball.Vel.X > 0) {
			continue
		}

		band := arena.PaddleDepth/2 + arena.BallRadius
		reach := arena.PaddleExtent/2 + arena.BallRadius
		dx := ball.Pos.X - paddle.Axial
		offset := ball.Pos.Y - paddle.Lateral
		if dx > band || dx < -band || offset > reach || offset < -reach {
			continue
		}

		// Arcade response: reflect and speed up the along-width
		// component, impart spin from the contact offset, pin the ball
		// to the collision plane so it cannot embed this frame.
		ball.Vel.X = -ball.Vel.X * arena.AccelFactor
		ball.Vel.Y += offset * arena.SpinFactor
		plane := arena.CollisionPlane()
		if paddle.Axial > 0 {
			ball.Pos.X = plane
		} else {
			ball.Pos.X = -plane
		}
		ball.Rally++
		PlaySFX(e, cfg.SoundPaddleHit)
		return
	}
}

// serve recenters the ball after a point. The along-width speed is reset
// to exactly the base speed, directed at the given sign; the lateral
// component is re-randomized within half the base speed either way.
func serve(ball *components.BallData, arena *components.ArenaData, sign float64) {
	ball.Pos = components.Vector{}
	ball.Vel.X = sign * arena.BaseBallSpeed
	ball.Vel.Y = (rng.Float64() - 0.5) * arena.BaseBallSpeed
	ball.Rally = 0
}
