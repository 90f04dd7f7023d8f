package systems

import (
	"math"
	"testing"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

func TestMovePlayerStepsAndClamps(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)

	paddle := paddleOf(t, e, cfg.SidePlayer)

	MovePlayer(e, cfg.MoveUp)
	if paddle.Target != cfg.Arena.PaddleStep {
		t.Errorf("target = %v after one step, want %v", paddle.Target, cfg.Arena.PaddleStep)
	}

	limit := cfg.Arena.LateralLimit()
	for i := 0; i < 100; i++ {
		MovePlayer(e, cfg.MoveUp)
	}
	if paddle.Target != limit {
		t.Errorf("target = %v after spamming up, want clamped to %v", paddle.Target, limit)
	}

	for i := 0; i < 200; i++ {
		MovePlayer(e, cfg.MoveDown)
	}
	if paddle.Target != -limit {
		t.Errorf("target = %v after spamming down, want clamped to %v", paddle.Target, -limit)
	}
}

func TestMovePlayerIgnoredOutsidePlaying(t *testing.T) {
	e := newTestECS(t)

	paddle := paddleOf(t, e, cfg.SidePlayer)

	// Menu phase
	MovePlayer(e, cfg.MoveUp)
	if paddle.Target != 0 {
		t.Errorf("target = %v in the menu phase, want 0", paddle.Target)
	}

	// Paused
	StartMatch(e)
	GetOrCreatePause(e).IsPaused = true
	MovePlayer(e, cfg.MoveUp)
	if paddle.Target != 0 {
		t.Errorf("target = %v while paused, want 0", paddle.Target)
	}
}

func TestPlayerPaddleConvergesWithoutOvershoot(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	paddle := paddleOf(t, e, cfg.SidePlayer)
	paddle.Target = 3.0

	// Park the ball so the AI retarget does not matter here
	ballOf(t, e).Pos = components.Vector{}

	prev := paddle.Lateral
	for i := 0; i < 300; i++ {
		UpdatePaddles(e)
		if paddle.Lateral > 3.0 {
			t.Fatalf("step %d: lateral %v overshot target 3.0", i, paddle.Lateral)
		}
		if paddle.Lateral < prev {
			t.Fatalf("step %d: lateral %v moved away from target", i, paddle.Lateral)
		}
		prev = paddle.Lateral
	}
	if math.Abs(paddle.Lateral-3.0) > 0.01 {
		t.Errorf("lateral = %v after 5s, want converged to 3.0", paddle.Lateral)
	}
}

func TestAITracksBallWithLag(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	ballOf(t, e).Pos = components.Vector{X: 5, Y: 3}

	player := paddleOf(t, e, cfg.SidePlayer)
	ai := paddleOf(t, e, cfg.SideAI)
	player.Target = 3

	UpdatePaddles(e)

	if ai.Target != 3 {
		t.Errorf("AI target = %v, want ball lateral 3", ai.Target)
	}
	if ai.Lateral <= 0 || ai.Lateral >= 3 {
		t.Errorf("AI lateral = %v, want a partial step toward 3", ai.Lateral)
	}
	// Same target, but the player's higher rate closes faster
	if ai.Lateral >= player.Lateral {
		t.Errorf("AI (%v) moved at least as fast as the player (%v)", ai.Lateral, player.Lateral)
	}
}

func TestAITargetClampedToTravelRange(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	limit := cfg.Arena.LateralLimit()
	ballOf(t, e).Pos = components.Vector{X: 5, Y: limit + 2}

	UpdatePaddles(e)

	ai := paddleOf(t, e, cfg.SideAI)
	if ai.Target != limit {
		t.Errorf("AI target = %v, want clamped to %v", ai.Target, limit)
	}
}

func TestPaddleLateralNeverExceedsLimit(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, cfg.Arena.MaxDelta)

	limit := cfg.Arena.LateralLimit()
	ballOf(t, e).Pos = components.Vector{X: 5, Y: 100}

	for i := 0; i < 300; i++ {
		UpdatePaddles(e)
	}

	ai := paddleOf(t, e, cfg.SideAI)
	if ai.Lateral > limit {
		t.Errorf("AI lateral = %v, beyond travel limit %v", ai.Lateral, limit)
	}
}
