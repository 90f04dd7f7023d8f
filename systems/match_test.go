package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

func TestMatchStartsInMenuPhase(t *testing.T) {
	e := newTestECS(t)

	if got := Phase(e); got != cfg.PhaseMenu {
		t.Errorf("initial phase = %v, want menu", got)
	}
	if IsPlaying(e) {
		t.Error("IsPlaying = true before the match started")
	}
}

func TestStartMatchResetsEverything(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)

	match := matchOf(t, e)
	if match.Phase != cfg.PhasePlaying {
		t.Errorf("phase = %v, want playing", match.Phase)
	}
	if match.PlayerScore != 0 || match.AIScore != 0 {
		t.Errorf("score = %d-%d, want 0-0", match.PlayerScore, match.AIScore)
	}
	if match.Winner != cfg.SideNone {
		t.Errorf("winner = %v, want none", match.Winner)
	}

	ball := ballOf(t, e)
	if ball.Pos.X != 0 || ball.Pos.Y != 0 {
		t.Errorf("ball at (%v, %v), want center", ball.Pos.X, ball.Pos.Y)
	}
	if ball.Vel.X != cfg.Arena.BaseBallSpeed {
		t.Errorf("first serve Vel.X = %v, want %v toward the AI end", ball.Vel.X, cfg.Arena.BaseBallSpeed)
	}

	for _, side := range []cfg.Side{cfg.SidePlayer, cfg.SideAI} {
		paddle := paddleOf(t, e, side)
		if paddle.Lateral != 0 || paddle.Target != 0 {
			t.Errorf("%v paddle lateral=%v target=%v, want centered", side, paddle.Lateral, paddle.Target)
		}
	}
}

func TestWinAtThresholdEndsMatch(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)
	setDelta(t, e, testDt)

	match := matchOf(t, e)
	match.PlayerScore = cfg.Arena.WinningScore - 1
	match.AIScore = cfg.Arena.WinningScore - 1

	// Final point: ball out past the AI edge, clear of the paddle
	ball := ballOf(t, e)
	ball.Pos = components.Vector{X: cfg.Arena.Width/2 + 0.95, Y: 4}
	ball.Vel = components.Vector{X: 8, Y: 0}

	UpdateBall(e)
	UpdateEvents(e)

	if match.PlayerScore != cfg.Arena.WinningScore {
		t.Errorf("PlayerScore = %d, want %d", match.PlayerScore, cfg.Arena.WinningScore)
	}
	if match.Phase != cfg.PhaseGameOver {
		t.Errorf("phase = %v, want gameover in the same update", match.Phase)
	}
	if match.Winner != cfg.SidePlayer {
		t.Errorf("winner = %v, want player", match.Winner)
	}

	// Input is dead until the next start
	paddle := paddleOf(t, e, cfg.SidePlayer)
	before := paddle.Target
	MovePlayer(e, cfg.MoveUp)
	if paddle.Target != before {
		t.Errorf("paddle target moved to %v after game over", paddle.Target)
	}
}

func TestScoreEventsIgnoredAfterGameOver(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)

	match := matchOf(t, e)
	match.Phase = cfg.PhaseGameOver
	match.Winner = cfg.SideAI
	match.AIScore = cfg.Arena.WinningScore

	components.ScoreEvent.Publish(e.World, components.ScoreEventData{Side: cfg.SidePlayer})
	UpdateEvents(e)

	if match.PlayerScore != 0 {
		t.Errorf("PlayerScore = %d, want 0 (events outside playing are dropped)", match.PlayerScore)
	}
	if match.Winner != cfg.SideAI {
		t.Errorf("winner changed to %v after the match ended", match.Winner)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	e := newTestECS(t)
	StartMatch(e)

	match := matchOf(t, e)
	match.Phase = cfg.PhaseGameOver
	match.Winner = cfg.SidePlayer
	match.PlayerScore = cfg.Arena.WinningScore
	match.AIScore = 2

	StartMatch(e)

	if match.Phase != cfg.PhasePlaying {
		t.Errorf("phase = %v, want playing", match.Phase)
	}
	if match.PlayerScore != 0 || match.AIScore != 0 {
		t.Errorf("score = %d-%d, want 0-0", match.PlayerScore, match.AIScore)
	}
	if match.Winner != cfg.SideNone {
		t.Errorf("winner = %v, want cleared", match.Winner)
	}

	ball := ballOf(t, e)
	if ball.Pos.X != 0 || ball.Pos.Y != 0 {
		t.Errorf("ball at (%v, %v) after restart, want center", ball.Pos.X, ball.Pos.Y)
	}
}

func TestSimulationGatedOutsidePlaying(t *testing.T) {
	e := newTestECS(t)

	ran := false
	system := WithPlayingCheck(func(_ *ecs.ECS) { ran = true })

	system(e)
	if ran {
		t.Error("wrapped system ran in the menu phase")
	}

	StartMatch(e)
	system(e)
	if !ran {
		t.Error("wrapped system did not run while playing")
	}

	ran = false
	GetOrCreatePause(e).IsPaused = true
	system(e)
	if ran {
		t.Error("wrapped system ran while paused")
	}
}
