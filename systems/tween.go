package systems

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/tags"
)

// UpdateTweens advances every bubble's rise tween. A bubble that
// reaches the surface pops: it respawns on the floor at a fresh spot
// with a new rise duration.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(Delta(e))
	arena := arenaOf(e)

	tags.Bubble.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		bubble := components.Bubble.Get(entry)

		height, _, done := seq.Update(dt)
		if done {
			bubble.X = (rand.Float64() - 0.5) * arena.Height
			bubble.Z = (rand.Float64() - 0.5) * arena.Width
			bubble.Y = 0
			rise := 4.0 + rand.Float64()*6.0
			components.Tween.Set(entry, gween.NewSequence(
				gween.New(0, float32(cfg.Court.WaterHeight), float32(rise), ease.InQuad),
			))
			return
		}
		bubble.Y = float64(height)
	})
}
