package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity is created on.
const Default ecs.LayerID = 0

// DashPolicy selects how a dash decides it is over.
type DashPolicy int

const (
	// DashTimeBoxed ends the dash once DashMaxTime has elapsed.
	DashTimeBoxed DashPolicy = iota
	// DashDistanceBoxed ends the dash once MaxDashLength has been travelled.
	DashDistanceBoxed
)

// TrailCadence selects when a dashing player leaves a trail.
type TrailCadence int

const (
	// TrailCrossing spawns when a multiple of Frequency centiseconds was
	// reached since the previous tick.
	TrailCrossing TrailCadence = iota
	// TrailSampled spawns when floor(elapsed*100) % Frequency == 0 on the
	// current tick only. At 60 TPS a 0.2s dash never lands on a multiple of 7.
	TrailSampled
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed         float64 // Horizontal input scale, multiplied by the tick delta
	AirFriction   float64 // Divides horizontal input while airborne
	AirSpeedRatio float64 // Air speed is clamped to Speed / AirSpeedRatio

	// Jump
	JumpForce      float64
	MaxJumpHeight  float64
	JumpBufferTime float64 // seconds

	// Dash
	DashSpeed     float64
	DashMaxTime   float64 // seconds
	DashResetTime float64 // seconds of cooldown after a dash ends
	DashPolicy    DashPolicy
	MaxDashLength float64 // only used by DashDistanceBoxed

	// Ground sensor
	GroundRayLength float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains the body integration constants
type PhysicsConfig struct {
	Gravity       float64 // px/s², positive is down
	GravityScale  float64 // default scale restored after a dash
	LinearDamping float64
	MaxFallSpeed  float64 // px/s
	MaxRiseSpeed  float64 // px/s, negative
}

// TrailConfig contains dash trail and tint values
type TrailConfig struct {
	Frequency      int     // centiseconds between trails
	Cadence        TrailCadence
	AlphaDecrement float64 // alpha removed from every trail each tick
	Color          color.RGBA
	DashTint       color.RGBA
	TintRecovery   float64 // seconds for the tint to return to white
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum |vx| in px/s to update look-ahead
}

// PauseConfig contains pause menu layout values
type PauseConfig struct {
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawProbe bool // Draw the ground ray and collision boxes
	ShowHUD   bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Trail TrailConfig
var Animation AnimationConfig
var Camera CameraConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Red       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Backdrop  = color.RGBA{R: 51, G: 51, B: 76, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "skyward",
	}

	Player = PlayerConfig{
		// Movement
		Speed:         20000.0,
		AirFriction:   50.0,
		AirSpeedRatio: 175.0,

		// Jump
		JumpForce:      20000.0,
		MaxJumpHeight:  200.0,
		JumpBufferTime: 0.1,

		// Dash
		DashSpeed:     250.0,
		DashMaxTime:   0.2,
		DashResetTime: 1.0,
		DashPolicy:    DashTimeBoxed,
		MaxDashLength: 50.0,

		// Ground sensor, should match the collider's half height
		GroundRayLength: 8.0,

		// Dimensions
		CollisionWidth:  8,
		CollisionHeight: 16,
	}

	Physics = PhysicsConfig{
		// 9.81 m/s² at 100 px per meter
		Gravity:       981.0,
		GravityScale:  0.8,
		LinearDamping: 1.5,
		MaxFallSpeed:  600.0,
		MaxRiseSpeed:  -600.0,
	}

	Trail = TrailConfig{
		Frequency:      7,
		Cadence:        TrailCrossing,
		AlphaDecrement: 0.04,
		Color:          color.RGBA{R: 0, G: 0, B: 255, A: 255},
		DashTint:       LightBlue,
		TintRecovery:   0.25,
	}

	Animation = AnimationConfig{
		FrameWidth:  32,
		FrameHeight: 32,
		Columns:     8,
		Rows:        8,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05, // Slower than follow for smooth feel
		LookAheadSpeedThreshold: 1.0,
	}

	Pause = PauseConfig{
		MenuOptions:       []string{"RESUME", "RESPAWN", "QUIT"},
		MenuItemHeight:    14,
		MenuItemGap:       8,
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 160},
		TextColorNormal:   Grey,
		TextColorSelected: White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		DrawProbe: false,
		ShowHUD:   true,
	}
}
