package tags

import "github.com/yohamta/donburi"

var (
	Ball         = donburi.NewTag().SetName("Ball")
	PlayerPaddle = donburi.NewTag().SetName("PlayerPaddle")
	AIPaddle     = donburi.NewTag().SetName("AIPaddle")
	Bubble       = donburi.NewTag().SetName("Bubble")
)

// Resolv tags for collision objects
const (
	ResolvBall   = "ball"
	ResolvPaddle = "paddle"
)
