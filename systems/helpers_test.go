package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/systems/factory"
	"github.com/automoto/reefpong/tags"
)

// newTestECS builds a full match world through the factories, exactly
// as the arena scene does, without any renderers.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	arenaEntry := factory.CreateArena(e, cfg.Arena)
	arena := components.Arena.Get(arenaEntry)

	spaceEntry := factory.CreateSpace(e, cfg.Arena)
	space := components.Space.Get(spaceEntry)

	factory.CreateBall(e, arena, space)
	factory.CreatePaddle(e, arena, space, cfg.SidePlayer)
	factory.CreatePaddle(e, arena, space, cfg.SideAI)
	factory.CreateMatch(e)
	factory.CreateClock(e)

	return e
}

func setDelta(t *testing.T, e *ecs.ECS, dt float64) {
	t.Helper()
	entry, ok := components.Clock.First(e.World)
	if !ok {
		t.Fatal("clock entity missing")
	}
	components.Clock.Get(entry).Delta = dt
}

func ballOf(t *testing.T, e *ecs.ECS) *components.BallData {
	t.Helper()
	entry, ok := components.Ball.First(e.World)
	if !ok {
		t.Fatal("ball entity missing")
	}
	return components.Ball.Get(entry)
}

func matchOf(t *testing.T, e *ecs.ECS) *components.MatchData {
	t.Helper()
	entry, ok := components.Match.First(e.World)
	if !ok {
		t.Fatal("match entity missing")
	}
	return components.Match.Get(entry)
}

func paddleOf(t *testing.T, e *ecs.ECS, side cfg.Side) *components.PaddleData {
	t.Helper()
	tag := tags.PlayerPaddle
	if side == cfg.SideAI {
		tag = tags.AIPaddle
	}
	entry, ok := tag.First(e.World)
	if !ok {
		t.Fatalf("paddle entity missing for side %v", side)
	}
	return components.Paddle.Get(entry)
}
