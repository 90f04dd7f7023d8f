package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/assets"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
)

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
	toneCache *assets.ToneCache
)

func initGlobalAudio() {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(cfg.Audio.SampleRate)
		toneCache = assets.NewToneCache(cfg.Audio.SampleRate)
	})
}

// PlaySFX queues a sound effect; it plays on the next audio update.
// Safe to call from any system, including before the audio context is up.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	data := getOrCreateAudio(e)
	data.PendingSFX = append(data.PendingSFX, id)
}

// UpdateAudio drains the queued effects through short-lived players.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	if len(data.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, id := range data.PendingSFX {
		pcm := toneCache.Get(id)
		if pcm == nil {
			continue
		}
		player := audioCtx.NewPlayerFromBytes(pcm)
		player.SetVolume(cfg.Audio.SFXVolume)
		player.Play()
	}
	data.PendingSFX = data.PendingSFX[:0]
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{})
	}
	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}
