package systems

import (
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool
	JustPressed bool
}

// UpdateInput polls raw input and updates the InputData singleton.
// Must run before every system that consumes actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	for i := range input.Current {
		if input.Current[i] {
			input.HeldFrames[i]++
		} else {
			input.HeldFrames[i] = 0
		}
	}
}

// UpdatePlayerControls converts movement actions into discrete paddle
// intents: one step on press, then key-repeat while held. The core only
// ever sees MovePlayer calls, never the event source.
func UpdatePlayerControls(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if movementFired(input, cfg.ActionMoveUp) {
		MovePlayer(e, cfg.MoveUp)
	}
	if movementFired(input, cfg.ActionMoveDown) {
		MovePlayer(e, cfg.MoveDown)
	}
}

func movementFired(input *components.InputData, action cfg.ActionID) bool {
	held := input.HeldFrames[action]
	if held == 1 {
		return true
	}
	if held > cfg.Input.MoveRepeatDelay {
		return (held-cfg.Input.MoveRepeatDelay)%cfg.Input.MoveRepeatFrames == 0
	}
	return false
}

// GetInput returns the input singleton, creating it as needed. Scenes
// use this to poll actions outside the system list.
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}

// GetAction returns the temporal state of an action
func GetAction(input *components.InputData, action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:     input.Current[action],
		JustPressed: input.Current[action] && !input.Previous[action],
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}
	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}
