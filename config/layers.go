package config

import "github.com/yohamta/donburi/ecs"

// Renderer layers, back to front.
const (
	Default ecs.LayerID = iota
	LayerOverlay
)
