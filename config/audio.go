package config

// SoundID identifies a synthesized sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPaddleHit
	SoundWallBounce
	SoundScore
	SoundWin
	SoundLose
	SoundMenuSelect
)

// ToneSpec describes one synthesized blip
type ToneSpec struct {
	Freq     float64 // Hz
	Duration float64 // seconds
	Volume   float64 // 0.0 to 1.0
}

// AudioConfig contains audio system configuration
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Tones      map[SoundID]ToneSpec
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.8,
		Tones: map[SoundID]ToneSpec{
			SoundPaddleHit:  {Freq: 440, Duration: 0.06, Volume: 0.6},
			SoundWallBounce: {Freq: 330, Duration: 0.05, Volume: 0.5},
			SoundScore:      {Freq: 220, Duration: 0.25, Volume: 0.7},
			SoundWin:        {Freq: 660, Duration: 0.45, Volume: 0.7},
			SoundLose:       {Freq: 150, Duration: 0.45, Volume: 0.7},
			SoundMenuSelect: {Freq: 520, Duration: 0.05, Volume: 0.5},
		},
	}
}
