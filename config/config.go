package config

import (
	"image/color"
)

// Default is the only render/system layer the game uses. Untyped so the
// package stays free of engine imports for headless tools.
const Default = 0

// TicksPerSecond converts the design's second-based timings into frames.
const TicksPerSecond = 60

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains player movement values
type PlayerConfig struct {
	Acceleration    float64
	MaxSpeed        float64
	JumpSpeed       float64
	Gravity         float64
	Friction        float64
	CollisionWidth  float64
	CollisionHeight float64
	Color           color.RGBA
}

// PhysicsConfig contains global physics values
type PhysicsConfig struct {
	MaxFallSpeed float64
	CellSize     int // resolv space cell size in pixels
}

// GateConfig controls the level-exit gate
type GateConfig struct {
	CompletionDelay   int     // Frames between completing the level and loading the next one
	FailureFlash      int     // Frames the gate flashes after a rejected contact
	KnockbackForce    float64 // Impulse applied to a player with a physics body
	KnockbackDistance float64 // Pixels the player is displaced when it has no physics body
	KnockbackFrames   int     // Frames the displacement tween takes
	Color             color.RGBA
	SuccessColor      color.RGBA
	FailureColor      color.RGBA
}

// NoticeConfig controls the "objectives not met" message box
type NoticeConfig struct {
	Duration   int // Frames before the notice hides itself
	Title      string
	BoxPadding float64
	TopMargin  float64
	LineHeight int
	BoxColor   color.RGBA
	TextColor  color.RGBA
}

// BossConfig controls boss defeat registration
type BossConfig struct {
	RetryDelay    int // Frames before retrying a registration the manager was not ready for
	DeathLinger   int // Frames a dead boss stays in the world
	DefaultHealth int
	Width         float64
	Height        float64
	Color         color.RGBA
}

// CollectibleConfig contains pickup sizes and colors
type CollectibleConfig struct {
	CoinSize    float64
	ChestWidth  float64
	ChestHeight float64
	CoinColor   color.RGBA
	ChestColor  color.RGBA
}

// ObjectivesConfig positions the objective tracker
type ObjectivesConfig struct {
	X, Y       int
	LineHeight int
	TextColor  color.RGBA
	DoneColor  color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Gate GateConfig
var Notice NoticeConfig
var Boss BossConfig
var Collectible CollectibleConfig
var Objectives ObjectivesConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Acceleration:    0.75,
		MaxSpeed:        4.0,
		JumpSpeed:       10.0,
		Gravity:         0.5,
		Friction:        0.5,
		CollisionWidth:  16,
		CollisionHeight: 32,
		Color:           LightBlue,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 10.0,
		CellSize:     16,
	}

	Gate = GateConfig{
		CompletionDelay:   2 * TicksPerSecond,
		FailureFlash:      1 * TicksPerSecond,
		KnockbackForce:    5.0,
		KnockbackDistance: 32.0, // two tiles
		KnockbackFrames:   12,
		Color:             Yellow,
		SuccessColor:      LightGreen,
		FailureColor:      Red,
	}

	Notice = NoticeConfig{
		Duration:   3 * TicksPerSecond,
		Title:      "Mission incomplete:",
		BoxPadding: 8,
		TopMargin:  20,
		LineHeight: 16,
		BoxColor:   BlackOverlay,
		TextColor:  White,
	}

	Boss = BossConfig{
		RetryDelay:    TicksPerSecond / 2,
		DeathLinger:   TicksPerSecond,
		DefaultHealth: 3,
		Width:         24,
		Height:        32,
		Color:         Purple,
	}

	Collectible = CollectibleConfig{
		CoinSize:    8,
		ChestWidth:  16,
		ChestHeight: 12,
		CoinColor:   Yellow,
		ChestColor:  Orange,
	}

	Objectives = ObjectivesConfig{
		X:          8,
		Y:          16,
		LineHeight: 14,
		TextColor:  White,
		DoneColor:  LightGreen,
	}

	loadEnv()
	loadLevels()
}
