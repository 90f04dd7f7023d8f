package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the per-world frame clock (singleton component). Delta is
// the clamped time step every simulation system reads this frame. Tests
// set Delta directly instead of running the wall-clock system.
type ClockData struct {
	Delta    float64 // seconds, already clamped to the configured maximum
	RawDelta float64 // unclamped measurement, for the debug overlay
	Last     time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
