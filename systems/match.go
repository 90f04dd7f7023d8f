package systems

import (
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartMatch starts a new match: scores to zero, winner cleared, ball
// and paddles recentered, first serve toward the AI end. Valid from any
// phase; calling it mid-match restarts the match.
func StartMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	match.PlayerScore = 0
	match.AIScore = 0
	match.Winner = cfg.SideNone
	match.Phase = cfg.PhasePlaying

	arena := arenaOf(e)

	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		paddle.Lateral = 0
		paddle.Target = 0
	})

	if ballEntry, ok := components.Ball.First(e.World); ok {
		serve(components.Ball.Get(ballEntry), arena, 1)
	}
}

// IsPlaying returns true while the match phase admits simulation.
func IsPlaying(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).Phase == cfg.PhasePlaying
}

// Phase returns the current match phase.
func Phase(e *ecs.ECS) cfg.GamePhase {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return cfg.PhaseMenu
	}
	return components.Match.Get(matchEntry).Phase
}

// WithPlayingCheck wraps a simulation system so it only advances while
// the match is in the playing phase and not paused. Pausing is the frame
// driver skipping calls, not suspension of in-flight work.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) || IsPaused(e) {
			return
		}
		system(e)
	}
}

func arenaOf(e *ecs.ECS) *components.ArenaData {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		panic("arena entity missing; worlds must be built through the factories")
	}
	return components.Arena.Get(entry)
}
