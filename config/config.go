package config

import "image/color"

// ArenaConfig contains the simulation constants for one match.
// Factories copy these into entities at construction so independent
// match worlds (e.g. in tests) never share mutable state.
type ArenaConfig struct {
	// Geometry (simulation units, origin at the arena center)
	Width        float64 // along-width axis: ball travel, scoring at +-Width/2
	Height       float64 // lateral axis: paddle travel, walls at +-Height/2
	PaddleExtent float64 // paddle size along the lateral axis
	PaddleDepth  float64 // paddle size along the width axis
	BallRadius   float64

	// Speeds
	BaseBallSpeed   float64 // along-width speed on every serve
	PaddleMoveSpeed float64 // player smoothing rate (1/s)
	AITrackRate     float64 // AI smoothing rate (1/s) - the difficulty cap
	PaddleStep      float64 // lateral units added to the target per move intent

	// Rally tuning
	AccelFactor      float64 // along-width speed multiplier per paddle hit
	SpinFactor       float64 // lateral velocity added per unit of contact offset
	MaxLateralFactor float64 // lateral speed bound as a multiple of BaseBallSpeed

	// Scoring
	ScoreMargin  float64 // distance past the arena edge before a point counts
	WinningScore int

	// Frame stepping
	MaxDelta float64 // seconds; larger frame deltas are clamped to this
}

// LateralLimit returns the maximum paddle center offset from the arena center.
func (a *ArenaConfig) LateralLimit() float64 {
	return a.Height/2 - a.PaddleExtent/2
}

// CollisionPlane returns the along-width position (positive side) at which
// the ball center rests against a paddle face.
func (a *ArenaConfig) CollisionPlane() float64 {
	return a.Width/2 - a.PaddleDepth/2 - a.BallRadius
}

// MaxLateralSpeed returns the lateral ball speed bound.
func (a *ArenaConfig) MaxLateralSpeed() float64 {
	return a.MaxLateralFactor * a.BaseBallSpeed
}

// CameraConfig contains the perspective projection used by the court renderer.
type CameraConfig struct {
	Eye           float64 // distance behind the player edge
	EyeHeight     float64 // eye height above the court floor
	FocalLength   float64 // projection scale in pixels
	SwaySmoothing float64 // how fast the camera drifts toward the ball laterally (1/s)
	SwayScale     float64 // fraction of ball lateral offset applied to the eye
}

// HUDConfig contains score/rally display configuration.
type HUDConfig struct {
	ScoreY      float64
	RallyY      float64
	BannerY     float64
	ScoreColor  color.RGBA
	RallyColor  color.RGBA
	BannerColor color.RGBA
}

// MenuConfig contains main menu presentation values.
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// GameOverConfig contains game over overlay configuration values.
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	FadeSeconds       float32 // overlay fade-in duration
}

// PauseConfig contains pause overlay configuration values.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// CourtConfig contains renderer colors for the water tank.
type CourtConfig struct {
	WaterTop     color.RGBA
	WaterBottom  color.RGBA
	FloorColor   color.RGBA
	LineColor    color.RGBA
	PlayerPaddle color.RGBA
	AIPaddle     color.RGBA
	BallColor    color.RGBA
	ShadowColor  color.RGBA
	BubbleColor  color.RGBA
	NumBubbles   int
	WaterHeight  float64 // court units from floor to surface
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Camera CameraConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Court CourtConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Coral        = color.RGBA{R: 255, G: 130, B: 100, A: 255}
	Seafoam      = color.RGBA{R: 120, G: 226, B: 180, A: 255}
	DeepBlue     = color.RGBA{R: 10, G: 30, B: 60, A: 255}
	SandYellow   = color.RGBA{R: 214, G: 190, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Arena = ArenaConfig{
		Width:        24.0,
		Height:       14.0,
		PaddleExtent: 2.5,
		PaddleDepth:  2.0,
		BallRadius:   0.5,

		BaseBallSpeed:   8.0,
		PaddleMoveSpeed: 12.0,
		AITrackRate:     3.5,
		PaddleStep:      0.5,

		AccelFactor:      1.05,
		SpinFactor:       1.5,
		MaxLateralFactor: 1.5,

		ScoreMargin:  1.0,
		WinningScore: 5,

		MaxDelta: 0.05,
	}

	Camera = CameraConfig{
		Eye:           9.0,
		EyeHeight:     5.0,
		FocalLength:   420.0,
		SwaySmoothing: 2.0,
		SwayScale:     0.25,
	}

	HUD = HUDConfig{
		ScoreY:      24,
		RallyY:      44,
		BannerY:     120,
		ScoreColor:  White,
		RallyColor:  Seafoam,
		BannerColor: Coral,
	}

	Menu = MenuConfig{
		BackgroundColor: DeepBlue,
		TitleColor:      Seafoam,
		Title:           "REEF PONG",
	}

	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        Coral,
		TextColorNormal:   White,
		TextColorSelected: Seafoam,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Rematch", "Main Menu"},
		FadeSeconds:       0.6,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Seafoam,
		MenuStartY:        140,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Main Menu"},
	}

	Court = CourtConfig{
		WaterTop:     color.RGBA{R: 12, G: 44, B: 84, A: 255},
		WaterBottom:  DeepBlue,
		FloorColor:   SandYellow,
		LineColor:    color.RGBA{R: 200, G: 220, B: 240, A: 120},
		PlayerPaddle: Seafoam,
		AIPaddle:     Coral,
		BallColor:    White,
		ShadowColor:  color.RGBA{R: 0, G: 0, B: 0, A: 90},
		BubbleColor:  color.RGBA{R: 180, G: 220, B: 255, A: 110},
		NumBubbles:   14,
		WaterHeight:  9.0,
	}
}
