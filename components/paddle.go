package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
)

// PaddleData owns one paddle's lateral position. Axial is fixed per side
// for the life of the match. Target is where the paddle wants to be;
// Lateral approaches it every frame, so input never teleports the
// collidable position.
type PaddleData struct {
	Side    cfg.Side
	Axial   float64 // fixed along-width position (negative = player end)
	Lateral float64 // actual, collidable lateral position
	Target  float64 // clamped destination lateral position
	Rate    float64 // smoothing rate (1/s), slower for the AI
}

var Paddle = donburi.NewComponentType[PaddleData]()
