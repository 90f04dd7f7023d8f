package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the scores and the match phase.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	PlayerScore int
	AIScore     int
	Phase       cfg.GamePhase
	Winner      cfg.Side // SideNone until the match ends
}

var Match = donburi.NewComponentType[MatchData]()

// ScoreFor returns the current score for a side.
func (m *MatchData) ScoreFor(side cfg.Side) int {
	if side == cfg.SidePlayer {
		return m.PlayerScore
	}
	return m.AIScore
}

// AddPoint increments the given side's counter.
func (m *MatchData) AddPoint(side cfg.Side) {
	if side == cfg.SidePlayer {
		m.PlayerScore++
	} else {
		m.AIScore++
	}
}
