package config

// GamePhase is the match-level mode gating simulation and input.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

// Side identifies one end of the arena.
type Side int

const (
	SideNone Side = iota - 1
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideAI
	case SideAI:
		return SidePlayer
	}
	return SideNone
}

// MoveDirection is a player movement intent along the lateral axis.
type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)
