package components

import (
	cfg "github.com/automoto/reefpong/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay systems for the
// audio system to play (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
