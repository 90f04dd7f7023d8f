package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the renderer's eye position. SwayX is the smoothed
// lateral drift toward the ball; cosmetic only, the simulation never
// reads it.
type CameraData struct {
	Position math.Vec2 // X: lateral eye offset, Y: eye height
	SwayX    float64
}

var Camera = donburi.NewComponentType[CameraData]()
