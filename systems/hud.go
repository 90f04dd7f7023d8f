package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/fonts"
)

// DrawHUD renders the score line and the rally counter
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	width := float64(screen.Bounds().Dx())

	score := fmt.Sprintf("YOU %d   %d REEF", match.PlayerScore, match.AIScore)
	scoreFont := fonts.Bold.Get()
	scoreX := int((width - float64(len(score)*12)) / 2)
	text.Draw(screen, score, scoreFont, scoreX, int(cfg.HUD.ScoreY), cfg.HUD.ScoreColor)

	if match.Phase != cfg.PhasePlaying {
		return
	}

	if ballEntry, ok := components.Ball.First(e.World); ok {
		ball := components.Ball.Get(ballEntry)
		if ball.Rally >= 3 {
			rally := fmt.Sprintf("rally x%d", ball.Rally)
			rallyFont := fonts.Small.Get()
			rallyX := int((width - float64(len(rally)*8)) / 2)
			text.Draw(screen, rally, rallyFont, rallyX, int(cfg.HUD.RallyY), cfg.HUD.RallyColor)
		}
	}
}
