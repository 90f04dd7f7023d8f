package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/fonts"
)

// NewUpdateGameOver creates the game over overlay system. The quit
// callback hands control back to the scene, same as the pause menu.
func NewUpdateGameOver(onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		matchEntry, ok := components.Match.First(e.World)
		if !ok {
			return
		}
		match := components.Match.Get(matchEntry)

		over := getOrCreateGameOver(e)

		if match.Phase != cfg.PhaseGameOver {
			over.Announced = false
			over.FadeAlpha = 0
			return
		}

		if !over.Announced {
			over.Announced = true
			over.SelectedOption = components.GameOverRematch
			over.FadeAlpha = 0
			startFade(e)
			if match.Winner == cfg.SidePlayer {
				PlaySFX(e, cfg.SoundWin)
			} else {
				PlaySFX(e, cfg.SoundLose)
			}
		}

		advanceFade(e, over)

		input := getOrCreateInput(e)
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			over.SelectedOption = components.GameOverOption(
				(int(over.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			over.SelectedOption = components.GameOverOption(
				(int(over.SelectedOption) + 1) % numOptions,
			)
		}

		selected := GetAction(input, cfg.ActionMenuSelect).JustPressed ||
			GetAction(input, cfg.ActionStart).JustPressed
		if selected {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch over.SelectedOption {
			case components.GameOverRematch:
				StartMatch(e)
			case components.GameOverMenu:
				onQuit()
			}
		}
	}
}

func startFade(e *ecs.ECS) {
	entry, _ := components.GameOver.First(e.World)
	if entry == nil || !entry.HasComponent(components.Tween) {
		return
	}
	components.Tween.Set(entry, gween.NewSequence(
		gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.OutQuad),
	))
}

func advanceFade(e *ecs.ECS, over *components.GameOverData) {
	entry, _ := components.GameOver.First(e.World)
	if entry == nil || !entry.HasComponent(components.Tween) {
		return
	}
	seq := components.Tween.Get(entry)
	value, _, done := seq.Update(float32(Delta(e)))
	if done {
		over.FadeAlpha = 1
		return
	}
	over.FadeAlpha = value
}

func getOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver, components.Tween))
		components.GameOver.SetValue(ent, components.GameOverData{})
		components.Tween.Set(ent, gween.NewSequence())
	}
	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// DrawGameOver renders the end-of-match overlay
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.Phase != cfg.PhaseGameOver {
		return
	}
	overEntry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	over := components.GameOver.Get(overEntry)

	width := float64(screen.Bounds().Dx())

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float32(overlay.A) * over.FadeAlpha)
	vector.DrawFilledRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), overlay, false)

	title := "YOU WIN"
	if match.Winner == cfg.SideAI {
		title = "THE REEF WINS"
	}
	titleFont := fonts.Title.Get()
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	score := fmt.Sprintf("%d - %d", match.PlayerScore, match.AIScore)
	scoreFont := fonts.Bold.Get()
	scoreX := int((width - float64(len(score)*12)) / 2)
	text.Draw(screen, score, scoreFont, scoreX, int(cfg.GameOver.TitleY)+30, cfg.White)

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)
		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == over.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		x := int((width - float64(len(option)*12)) / 2)
		text.Draw(screen, option, scoreFont, x, int(y), textColor)
	}
}
