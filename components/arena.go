package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
)

// ArenaData is the immutable geometry for one match world (singleton
// component). Factories copy the configuration in at construction, so
// several match worlds can run side by side without sharing state.
type ArenaData struct {
	cfg.ArenaConfig
}

var Arena = donburi.NewComponentType[ArenaData]()
