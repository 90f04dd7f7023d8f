package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/systems"
	"github.com/automoto/reefpong/systems/factory"
)

// ArenaScene runs a match against the AI paddle
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	shouldQuit   bool
}

// NewArenaScene creates a new arena scene
func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	as.ecs.Update()

	if as.shouldQuit {
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	quit := func() { as.shouldQuit = true }

	// Audio first so menu sounds play even while paused
	as.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	as.ecs.AddSystem(systems.UpdateClock)
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdatePlayerControls)
	as.ecs.AddSystem(systems.NewUpdatePause(quit))
	as.ecs.AddSystem(systems.UpdateDebug)

	// Simulation, gated on the playing phase
	as.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePaddles))
	as.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateBall))
	as.ecs.AddSystem(systems.UpdateEvents)

	// Presentation systems keep running in every phase
	as.ecs.AddSystem(systems.NewUpdateGameOver(quit))
	as.ecs.AddSystem(systems.UpdateCamera)
	as.ecs.AddSystem(systems.UpdateTweens)

	as.ecs.AddRenderer(cfg.Default, systems.DrawCourt)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawGameOver)
	as.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawPause)
	as.ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	// World setup: arena first, everything else positions off it
	arenaEntry := factory.CreateArena(as.ecs, cfg.Arena)
	arena := components.Arena.Get(arenaEntry)

	spaceEntry := factory.CreateSpace(as.ecs, cfg.Arena)
	space := components.Space.Get(spaceEntry)

	factory.CreateBall(as.ecs, arena, space)
	factory.CreatePaddle(as.ecs, arena, space, cfg.SidePlayer)
	factory.CreatePaddle(as.ecs, arena, space, cfg.SideAI)
	factory.CreateMatch(as.ecs)
	factory.CreateClock(as.ecs)
	factory.CreateCamera(as.ecs)
	factory.CreateBubbles(as.ecs, arena)

	// The menu scene already confirmed the start
	systems.StartMatch(as.ecs)
}
