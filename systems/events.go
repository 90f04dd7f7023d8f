package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvents drains the world's event queues. Runs every frame, right
// after the ball simulator, so score events reach the match reducer in
// the same tick they were published.
func UpdateEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
