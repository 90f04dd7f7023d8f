package components

import "github.com/yohamta/donburi"

// BubbleData is a decorative bubble drifting up through the tank.
// The tween component owns its height; nothing in the simulation reads it.
type BubbleData struct {
	X      float64 // lateral position in court space
	Z      float64 // along-width position in court space
	Y      float64 // current height, driven by the tween
	Radius float64
}

var Bubble = donburi.NewComponentType[BubbleData]()
