package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

var debugVisible bool

// UpdateDebug toggles the overlay on the debug action
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debugVisible = !debugVisible
	}
}

// DrawDebug prints frame timing and simulation state in the corner.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !debugVisible {
		return
	}

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nphase %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), Phase(e))

	if ballEntry, ok := components.Ball.First(e.World); ok {
		ball := components.Ball.Get(ballEntry)
		msg += fmt.Sprintf("\nball (%.2f, %.2f) vel (%.2f, %.2f) rally %d",
			ball.Pos.X, ball.Pos.Y, ball.Vel.X, ball.Vel.Y, ball.Rally)
	}
	if clockEntry, ok := components.Clock.First(e.World); ok {
		clock := components.Clock.Get(clockEntry)
		msg += fmt.Sprintf("\ndt %.4f (raw %.4f)", clock.Delta, clock.RawDelta)
	}

	ebitenutil.DebugPrint(screen, msg)
}
