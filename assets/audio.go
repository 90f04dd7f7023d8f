package assets

import (
	"math"

	cfg "github.com/automoto/reefpong/config"
)

// Synthesized arcade blips. The original hardware-pong feel wants square
// waves, so there are no audio files to embed; every effect is rendered
// once into raw 16-bit stereo PCM and cached.

// ToneCache holds rendered PCM per sound ID
type ToneCache struct {
	sampleRate int
	pcm        map[cfg.SoundID][]byte
}

// NewToneCache renders every configured tone up front so the first hit
// of a rally does not stutter.
func NewToneCache(sampleRate int) *ToneCache {
	c := &ToneCache{
		sampleRate: sampleRate,
		pcm:        make(map[cfg.SoundID][]byte),
	}
	for id, spec := range cfg.Audio.Tones {
		c.pcm[id] = renderSquare(sampleRate, spec)
	}
	return c
}

// Get returns the rendered PCM for a sound, or nil if unknown.
func (c *ToneCache) Get(id cfg.SoundID) []byte {
	return c.pcm[id]
}

// renderSquare renders a square wave with a linear decay envelope as
// 16-bit little-endian stereo PCM.
func renderSquare(sampleRate int, spec cfg.ToneSpec) []byte {
	numSamples := int(spec.Duration * float64(sampleRate))
	out := make([]byte, numSamples*4)

	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := 1.0
		if math.Mod(t*spec.Freq, 1.0) >= 0.5 {
			v = -1.0
		}
		envelope := 1.0 - float64(i)/float64(numSamples)
		sample := int16(v * envelope * spec.Volume * math.MaxInt16 * 0.5)

		lo := byte(sample)
		hi := byte(sample >> 8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}

	return out
}
