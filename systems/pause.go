package systems

import (
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause creates the pause system. Pause only applies while the
// match is playing; the quit callback hands control back to the scene.
func NewUpdatePause(onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed && IsPlaying(e) {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
			PlaySFX(e, cfg.SoundMenuSelect)
		}

		if !pause.IsPaused {
			return
		}

		numOptions := int(components.MenuQuit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
			case components.MenuRestart:
				pause.IsPaused = false
				StartMatch(e)
			case components.MenuQuit:
				pause.IsPaused = false
				onQuit()
			}
		}
	}
}

// IsPaused returns true while the pause overlay is up.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}
	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}

// DrawPause renders the pause overlay
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Pause.First(e.World)
	if !ok || !components.Pause.Get(entry).IsPaused {
		return
	}
	pause := components.Pause.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "PAUSED"
	titleX := int((width - float64(len(title)*20)) / 2)
	text.Draw(screen, title, titleFont, titleX, 90, cfg.White)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Pause.MenuOptions {
		y := cfg.Pause.MenuStartY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)
		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		x := int((width - float64(len(option)*12)) / 2)
		text.Draw(screen, option, menuFont, x, int(y), textColor)
	}
}
