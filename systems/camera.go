package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/gamemath"
)

// UpdateCamera drifts the eye laterally toward the ball. Pure
// presentation; the smoothing keeps it steady when the ball snaps back
// to center on a serve.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)

	target := 0.0
	if ballEntry, ok := components.Ball.First(e.World); ok {
		target = components.Ball.Get(ballEntry).Pos.Y * cfg.Camera.SwayScale
	}

	cam.SwayX = gamemath.Approach(cam.SwayX, target, cfg.Camera.SwaySmoothing, Delta(e))
	cam.Position.X = cam.SwayX
}
