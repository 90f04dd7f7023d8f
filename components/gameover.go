package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRematch GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the state of the game over overlay
type GameOverData struct {
	SelectedOption GameOverOption
	FadeAlpha      float32 // overlay fade-in, driven by a tween
	Announced      bool    // win/lose jingle already played for this match
}

var GameOver = donburi.NewComponentType[GameOverData]()
