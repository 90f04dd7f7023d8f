package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton in the menu phase and wires the
// score-event subscription for this world.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(e, components.MatchData{
		Phase:  cfg.PhaseMenu,
		Winner: cfg.SideNone,
	})

	components.ScoreEvent.Subscribe(ecs.World, onScore)

	return e
}

// onScore is the match reducer: bump the counter, end the match when the
// winning threshold is reached. Events published outside the playing
// phase are ignored.
func onScore(w donburi.World, ev components.ScoreEventData) {
	entry, ok := components.Match.First(w)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if match.Phase != cfg.PhasePlaying {
		return
	}

	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	match.AddPoint(ev.Side)
	if match.ScoreFor(ev.Side) >= arena.WinningScore {
		match.Phase = cfg.PhaseGameOver
		match.Winner = ev.Side
	}
}
