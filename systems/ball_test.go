package systems

import (
	"math"
	"testing"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

const testDt = 1.0 / 60.0

func TestPaddleReflectionAcceleratesAndPins(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.Width/2 - 1.4, Y: 0}
	ball.Vel = components.Vector{X: 8, Y: 0}

	UpdateBall(e)

	if math.Abs(ball.Vel.X+8.4) > 1e-9 {
		t.Errorf("Vel.X = %v, want -8.4", ball.Vel.X)
	}
	if ball.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0 for a dead-center hit", ball.Vel.Y)
	}
	plane := cfg.Arena.CollisionPlane()
	if ball.Pos.X != plane {
		t.Errorf("Pos.X = %v, want pinned to collision plane %v", ball.Pos.X, plane)
	}
	if ball.Rally != 1 {
		t.Errorf("Rally = %d, want 1", ball.Rally)
	}
}

func TestPaddleHitImpartsSpin(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.Width/2 - 1.4, Y: 1.0}
	ball.Vel = components.Vector{X: 8, Y: 0}

	UpdateBall(e)

	// Contact one unit above the paddle center adds offset * SpinFactor
	want := 1.0 * cfg.Arena.SpinFactor
	if math.Abs(ball.Vel.Y-want) > 1e-9 {
		t.Errorf("Vel.Y = %v, want %v", ball.Vel.Y, want)
	}
	if ball.Vel.X >= 0 {
		t.Errorf("Vel.X = %v, want reflected negative", ball.Vel.X)
	}
}

func TestPaddleMissOutsideReach(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.Width/2 - 1.4, Y: 4.0}
	ball.Vel = components.Vector{X: 8, Y: 0}

	UpdateBall(e)

	if ball.Vel.X != 8 {
		t.Errorf("Vel.X = %v, want unchanged 8 on a miss", ball.Vel.X)
	}
}

func TestDepartingBallNotRecaptured(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	// Just reflected: still inside the paddle band but moving away
	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.CollisionPlane(), Y: 0}
	ball.Vel = components.Vector{X: -8.4, Y: 0}

	UpdateBall(e)

	if ball.Vel.X != -8.4 {
		t.Errorf("Vel.X = %v, want -8.4 (no double bounce)", ball.Vel.X)
	}
}

func TestWallReflectionElastic(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	wallLimit := cfg.Arena.Height/2 - cfg.Arena.BallRadius

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: 0, Y: wallLimit - 0.05}
	ball.Vel = components.Vector{X: 0, Y: 8}

	UpdateBall(e)

	if ball.Vel.Y != -8 {
		t.Errorf("Vel.Y = %v, want -8", ball.Vel.Y)
	}
	if ball.Pos.Y != wallLimit {
		t.Errorf("Pos.Y = %v, want clamped to %v", ball.Pos.Y, wallLimit)
	}
}

func TestBallStaysInsideWalls(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Vel = components.Vector{X: 2, Y: 11}

	wallLimit := cfg.Arena.Height/2 - cfg.Arena.BallRadius
	for i := 0; i < 600; i++ {
		UpdateBall(e)
		if ball.Pos.Y > wallLimit || ball.Pos.Y < -wallLimit {
			t.Fatalf("step %d: Pos.Y = %v escaped walls", i, ball.Pos.Y)
		}
	}
}

func TestScoringPastAIEdge(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	// Send the ball out past the AI edge, laterally clear of the paddle
	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.Width/2 + 0.95, Y: 4}
	ball.Vel = components.Vector{X: 8, Y: 0}

	UpdateBall(e)
	UpdateEvents(e)

	match := matchOf(t, e)
	if match.PlayerScore != 1 || match.AIScore != 0 {
		t.Errorf("score = %d-%d, want 1-0", match.PlayerScore, match.AIScore)
	}
	if ball.Pos.X != 0 || ball.Pos.Y != 0 {
		t.Errorf("serve position = (%v, %v), want exact center", ball.Pos.X, ball.Pos.Y)
	}
	if ball.Vel.X != -cfg.Arena.BaseBallSpeed {
		t.Errorf("serve Vel.X = %v, want %v toward the conceding end", ball.Vel.X, -cfg.Arena.BaseBallSpeed)
	}
	if ball.Rally != 0 {
		t.Errorf("Rally = %d, want reset to 0", ball.Rally)
	}
}

func TestScoringPastPlayerEdge(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: -(cfg.Arena.Width/2 + 0.95), Y: 4}
	ball.Vel = components.Vector{X: -8, Y: 0}

	UpdateBall(e)
	UpdateEvents(e)

	match := matchOf(t, e)
	if match.AIScore != 1 || match.PlayerScore != 0 {
		t.Errorf("score = %d-%d, want 0-1", match.PlayerScore, match.AIScore)
	}
	if ball.Vel.X != cfg.Arena.BaseBallSpeed {
		t.Errorf("serve Vel.X = %v, want %v", ball.Vel.X, cfg.Arena.BaseBallSpeed)
	}
}

func TestServeLateralWithinHalfBase(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	half := cfg.Arena.BaseBallSpeed / 2
	ball := ballOf(t, e)

	for i := 0; i < 50; i++ {
		ball.Pos = components.Vector{X: cfg.Arena.Width/2 + 0.95, Y: 4}
		ball.Vel = components.Vector{X: 8, Y: 0}
		UpdateBall(e)
		UpdateEvents(e)

		if ball.Vel.Y < -half || ball.Vel.Y > half {
			t.Fatalf("serve Vel.Y = %v, want within [%v, %v]", ball.Vel.Y, -half, half)
		}
	}
}

func TestLateralSpeedClamped(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: 0, Y: 0}
	ball.Vel = components.Vector{X: 2, Y: 100}

	UpdateBall(e)

	max := cfg.Arena.MaxLateralSpeed()
	if math.Abs(ball.Vel.Y) > max {
		t.Errorf("Vel.Y = %v, want clamped to %v", ball.Vel.Y, max)
	}
}
