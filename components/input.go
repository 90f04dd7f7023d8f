package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing frames. Held
// frame counts drive movement key repeat.
type InputData struct {
	Current    [cfg.ActionCount]bool
	Previous   [cfg.ActionCount]bool
	HeldFrames [cfg.ActionCount]int
}

var Input = donburi.NewComponentType[InputData]()
