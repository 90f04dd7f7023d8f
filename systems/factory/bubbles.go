package factory

import (
	"math/rand"

	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// CreateBubbles scatters decorative bubbles through the tank. Each one
// rises on a gween sequence; the tween system restarts it from the floor
// when it reaches the surface.
func CreateBubbles(ecs *ecs.ECS, arena *components.ArenaData) {
	for i := 0; i < cfg.Court.NumBubbles; i++ {
		e := archetypes.Bubble.Spawn(ecs)

		x := (rand.Float64() - 0.5) * arena.Height
		z := (rand.Float64() - 0.5) * arena.Width
		components.Bubble.SetValue(e, components.BubbleData{
			X:      x,
			Z:      z,
			Y:      0,
			Radius: 0.08 + rand.Float64()*0.15,
		})

		rise := 4.0 + rand.Float64()*6.0 // seconds floor to surface
		tw := gween.NewSequence(
			gween.New(0, float32(cfg.Court.WaterHeight), float32(rise), ease.InQuad),
		)
		components.Tween.Set(e, tw)
	}
}
