package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/reefpong/components"
	cfg "github.com/automoto/reefpong/config"
	"github.com/automoto/reefpong/gamemath"
	"github.com/automoto/reefpong/tags"
)

const (
	floorSlices  = 48
	paddleHeight = 1.6 // rendered wall height in court units
	ballHeight   = 0.8 // rendered height of the ball above the floor
)

// DrawCourt renders the tank from behind the player's end: water
// gradient, floor, court lines, both paddles, the ball with its floor
// shadow, and the decorative bubbles. Painter's order, far to near.
func DrawCourt(e *ecs.ECS, screen *ebiten.Image) {
	arena := arenaOf(e)
	proj := projection(e, screen)

	drawWater(screen)
	drawFloor(screen, proj, arena)
	drawLines(screen, proj, arena)

	// AI paddle sits at the far end, behind everything else on the court
	eachPaddle(e, func(paddle *components.PaddleData) {
		if paddle.Side == cfg.SideAI {
			drawPaddle(screen, proj, arena, paddle, cfg.Court.AIPaddle)
		}
	})

	drawBall(e, screen, proj, arena)

	eachPaddle(e, func(paddle *components.PaddleData) {
		if paddle.Side == cfg.SidePlayer {
			drawPaddle(screen, proj, arena, paddle, cfg.Court.PlayerPaddle)
		}
	})

	drawBubbles(e, screen, proj)
}

// projection builds the frame's camera from the camera entity. The eye
// floats behind the player's end of the court.
func projection(e *ecs.ECS, screen *ebiten.Image) *gamemath.Projection {
	arena := arenaOf(e)
	p := &gamemath.Projection{
		EyeY:        cfg.Camera.EyeHeight,
		EyeZ:        -(arena.Width/2 + cfg.Camera.Eye),
		FocalLength: cfg.Camera.FocalLength,
		ScreenW:     float64(screen.Bounds().Dx()),
		ScreenH:     float64(screen.Bounds().Dy()),
	}
	if camEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(camEntry)
		p.EyeX = cam.Position.X
		p.EyeY = cam.Position.Y
	}
	return p
}

func drawWater(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	top := cfg.Court.WaterTop
	bottom := cfg.Court.WaterBottom

	const bands = 24
	bandH := h / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1)
		clr := lerpColor(top, bottom, t)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, w, bandH+1, clr, false)
	}
}

// drawFloor approximates the floor trapezoid with a stack of depth
// slices, each one a flat rect between its projected edges.
func drawFloor(screen *ebiten.Image, proj *gamemath.Projection, arena *components.ArenaData) {
	half := arena.Height / 2
	zNear := -arena.Width / 2
	zFar := arena.Width / 2
	step := (zFar - zNear) / floorSlices

	for i := 0; i < floorSlices; i++ {
		z0 := zNear + float64(i)*step
		z1 := z0 + step
		lx, y0 := proj.Project(gamemath.Vec3{X: -half, Y: 0, Z: z0})
		rx, _ := proj.Project(gamemath.Vec3{X: half, Y: 0, Z: z0})
		_, y1 := proj.Project(gamemath.Vec3{X: -half, Y: 0, Z: z1})
		vector.DrawFilledRect(screen,
			float32(lx), float32(y1),
			float32(rx-lx), float32(y0-y1)+1,
			cfg.Court.FloorColor, false)
	}
}

func drawLines(screen *ebiten.Image, proj *gamemath.Projection, arena *components.ArenaData) {
	half := arena.Height / 2
	zNear := -arena.Width / 2
	zFar := arena.Width / 2

	// Side lines run the full width of the court
	for _, x := range []float64{-half, half} {
		x0, y0 := proj.Project(gamemath.Vec3{X: x, Y: 0, Z: zNear})
		x1, y1 := proj.Project(gamemath.Vec3{X: x, Y: 0, Z: zFar})
		vector.StrokeLine(screen,
			float32(x0), float32(y0), float32(x1), float32(y1),
			2, cfg.Court.LineColor, false)
	}

	// Center line across the lateral axis
	x0, y0 := proj.Project(gamemath.Vec3{X: -half, Y: 0, Z: 0})
	x1, y1 := proj.Project(gamemath.Vec3{X: half, Y: 0, Z: 0})
	vector.StrokeLine(screen,
		float32(x0), float32(y0), float32(x1), float32(y1),
		1, cfg.Court.LineColor, false)
}

func drawPaddle(screen *ebiten.Image, proj *gamemath.Projection, arena *components.ArenaData, paddle *components.PaddleData, clr color.RGBA) {
	halfExtent := arena.PaddleExtent / 2
	left, bottom := proj.Project(gamemath.Vec3{X: paddle.Lateral - halfExtent, Y: 0, Z: paddle.Axial})
	right, _ := proj.Project(gamemath.Vec3{X: paddle.Lateral + halfExtent, Y: 0, Z: paddle.Axial})
	_, top := proj.Project(gamemath.Vec3{X: paddle.Lateral, Y: paddleHeight, Z: paddle.Axial})

	vector.DrawFilledRect(screen,
		float32(left), float32(top),
		float32(right-left), float32(bottom-top),
		clr, false)
}

func drawBall(e *ecs.ECS, screen *ebiten.Image, proj *gamemath.Projection, arena *components.ArenaData) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)

	// Render space: lateral sim axis on X, along-width sim axis on Z
	z := ball.Pos.X
	x := ball.Pos.Y

	sx, sy := proj.Project(gamemath.Vec3{X: x, Y: 0, Z: z})
	r := arena.BallRadius * proj.Scale(z)
	vector.DrawFilledCircle(screen,
		float32(sx), float32(sy), float32(r*0.8),
		cfg.Court.ShadowColor, false)

	sx, sy = proj.Project(gamemath.Vec3{X: x, Y: ballHeight, Z: z})
	vector.DrawFilledCircle(screen,
		float32(sx), float32(sy), float32(r),
		cfg.Court.BallColor, false)
}

func drawBubbles(e *ecs.ECS, screen *ebiten.Image, proj *gamemath.Projection) {
	tags.Bubble.Each(e.World, func(entry *donburi.Entry) {
		bubble := components.Bubble.Get(entry)
		sx, sy := proj.Project(gamemath.Vec3{X: bubble.X, Y: bubble.Y, Z: bubble.Z})
		r := bubble.Radius * proj.Scale(bubble.Z)
		vector.DrawFilledCircle(screen,
			float32(sx), float32(sy), float32(r),
			cfg.Court.BubbleColor, false)
	})
}

func eachPaddle(e *ecs.ECS, fn func(*components.PaddleData)) {
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		fn(components.Paddle.Get(entry))
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
