package factory

import (
	"github.com/automoto/reefpong/archetypes"
	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceMargin pads the collision space on every side so the ball's
// object stays inside the space while it travels past the arena edge
// toward the scoring line.
const SpaceMargin = 4.0

// CreateSpace builds the collision space in court coordinates: arena
// coordinates shifted so the top-left of the padded court is the origin.
func CreateSpace(ecs *ecs.ECS, arena cfg.ArenaConfig) *donburi.Entry {
	e := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(
		int(arena.Width+2*SpaceMargin)+1,
		int(arena.Height+2*SpaceMargin)+1,
		1, 1,
	)
	components.Space.Set(e, space)
	return e
}

// ToCourt converts an arena-centered coordinate pair to court space.
func ToCourt(arena *components.ArenaData, x, y float64) (float64, float64) {
	return x + arena.Width/2 + SpaceMargin, y + arena.Height/2 + SpaceMargin
}
