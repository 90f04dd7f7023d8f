package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector in arena coordinates: X along the width
// axis (scoring), Y along the lateral axis (paddle travel).
type Vector struct {
	X, Y float64
}

type BallData struct {
	Pos   Vector
	Vel   Vector
	Rally int // paddle hits since the last serve, presentation only
}

var Ball = donburi.NewComponentType[BallData]()
