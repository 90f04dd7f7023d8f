package systems

import (
	"time"

	"github.com/automoto/reefpong/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall-clock frame delta and clamps it to the
// arena's maximum step, so a stalled frame cannot tunnel the ball
// through both paddles. Must run before every simulation system.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	if clock.Last.IsZero() {
		clock.Last = now
		return
	}

	dt := now.Sub(clock.Last).Seconds()
	clock.Last = now
	clock.RawDelta = dt

	maxDelta := 1.0 / 20.0
	if arenaEntry, ok := components.Arena.First(e.World); ok {
		maxDelta = components.Arena.Get(arenaEntry).MaxDelta
	}
	if dt > maxDelta {
		dt = maxDelta
	}
	if dt < 0 {
		dt = 0
	}
	clock.Delta = dt
}

// Delta returns the current frame step for this world.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 1.0 / 60.0
	}
	return components.Clock.Get(entry).Delta
}
