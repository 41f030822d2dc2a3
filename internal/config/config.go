// Package config provides YAML-based game configuration loading and
// difficulty management for Northern Lights Dash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// DashConfig contains all tuning for the game. Distances are world units
// (roughly pixels) and rates are per simulation frame.
type DashConfig struct {
	World        WorldConfig       `yaml:"world"`
	Physics      PhysicsConfig     `yaml:"physics"`
	Player       PlayerConfig      `yaml:"player"`
	Platforms    PlatformConfig    `yaml:"platforms"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	PowerUps     PowerUpConfig     `yaml:"powerups"`
	Particles    ParticleConfig    `yaml:"particles"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
	Input        InputConfig       `yaml:"input"`
	HUD          HUDConfig         `yaml:"hud"`
}

// WorldConfig maps terminal cells to world units.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// PhysicsConfig defines the vertical motion model.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Thrust       float64 `yaml:"thrust"`        // Negative = up
	FloatGravity float64 `yaml:"float_gravity"` // Gravity factor under Float
	MinVelocity  float64 `yaml:"min_velocity"`
	MaxVelocity  float64 `yaml:"max_velocity"`
}

// PlayerConfig defines the player body and stamina.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StaminaMax   float64 `yaml:"stamina_max"`
	StaminaDrain float64 `yaml:"stamina_drain"`
	StaminaRegen float64 `yaml:"stamina_regen"`
}

// PlatformConfig defines platform generation and culling.
type PlatformConfig struct {
	Height           float64 `yaml:"height"`
	MinWidth         float64 `yaml:"min_width"`
	MaxWidth         float64 `yaml:"max_width"`
	GapMin           float64 `yaml:"gap_min"`
	GapMax           float64 `yaml:"gap_max"`
	SpawnOffset      float64 `yaml:"spawn_offset"`      // Distance past the right edge
	VerticalJitter   float64 `yaml:"vertical_jitter"`   // Full range of the y offset
	SafeMargin       float64 `yaml:"safe_margin"`       // Keep-out band at top and bottom
	LandingTolerance float64 `yaml:"landing_tolerance"` // Allowed interpenetration
	CullMargin       float64 `yaml:"cull_margin"`
	StartX           float64 `yaml:"start_x"`
	StartDrop        float64 `yaml:"start_drop"` // Below the vertical center
	StartWidth       float64 `yaml:"start_width"`
}

// CollectibleConfig defines collectible spawning and pickup.
type CollectibleConfig struct {
	Size         float64  `yaml:"size"`
	SpawnChance  float64  `yaml:"spawn_chance"`
	PowerUpShare float64  `yaml:"powerup_share"`
	CoalShare    float64  `yaml:"coal_share"`
	CocoaShare   float64  `yaml:"cocoa_share"`
	MinLift      float64  `yaml:"min_lift"`
	LiftRange    float64  `yaml:"lift_range"`
	EdgeInset    float64  `yaml:"edge_inset"`
	CullMargin   float64  `yaml:"cull_margin"`
	MagnetRadius float64  `yaml:"magnet_radius"`
	MagnetPull   float64  `yaml:"magnet_pull"`
	CocoaRefill  float64  `yaml:"cocoa_refill"`
	CoalStamina  float64  `yaml:"coal_stamina"`
	PresentColor []string `yaml:"present_colors"`
	CoalColor    string   `yaml:"coal_color"`
	CocoaColor   string   `yaml:"cocoa_color"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Present      float64 `yaml:"present"`
	PowerUp      float64 `yaml:"powerup"`
	CoalPenalty  float64 `yaml:"coal_penalty"`
	SurvivalRate float64 `yaml:"survival_rate"` // Points per unit of scrolled distance
	Multiplier   float64 `yaml:"multiplier"`    // Factor while Score-Multiplier is active
}

// PowerUpConfig defines buff timing and strength.
type PowerUpConfig struct {
	Duration    time.Duration `yaml:"duration"`
	SpeedBoost  float64       `yaml:"speed_boost"`
	MagnetColor string        `yaml:"magnet_color"`
	SpeedColor  string        `yaml:"speed_color"`
	FloatColor  string        `yaml:"float_color"`
	ScoreColor  string        `yaml:"score_color"`
}

// ParticleConfig defines visual effect emission.
type ParticleConfig struct {
	Decay        float64 `yaml:"decay"`
	ScrollFactor float64 `yaml:"scroll_factor"`
	TrailEvery   int     `yaml:"trail_every"`
	ExhaustCount int     `yaml:"exhaust_count"`
	BurstCount   int     `yaml:"burst_count"`
	TrailColor   string  `yaml:"trail_color"`
	FloatColor   string  `yaml:"float_color"`
	ExhaustColor string  `yaml:"exhaust_color"`
	SootColor    string  `yaml:"soot_color"`
	SteamColor   string  `yaml:"steam_color"`
}

// DifficultyConfig defines the scroll speed progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	InitialLevel   float64 `yaml:"initial_level"` // 0.0 = base speed, 1.0 = max speed
	BaseSpeed      float64 `yaml:"base_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// InputConfig defines how terminal key presses become a held control.
type InputConfig struct {
	KeyHoldTicks int `yaml:"key_hold_ticks"`
}

// HUDConfig defines presentation cadence.
type HUDConfig struct {
	PowerUpSyncEvery int `yaml:"powerup_sync_every"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the tuning for values the simulation cannot honor.
func (c DashConfig) Validate() error {
	switch {
	case c.World.CellWidth <= 0 || c.World.CellHeight <= 0:
		return fmt.Errorf("%w: world cell size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.StaminaMax <= 0:
		return fmt.Errorf("%w: stamina_max must be positive", ErrInvalidConfig)
	case c.Physics.MinVelocity > c.Physics.MaxVelocity:
		return fmt.Errorf("%w: min_velocity %.2f exceeds max_velocity %.2f",
			ErrInvalidConfig, c.Physics.MinVelocity, c.Physics.MaxVelocity)
	case c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platform height must be positive", ErrInvalidConfig)
	case c.Platforms.MinWidth <= 0 || c.Platforms.MinWidth > c.Platforms.MaxWidth:
		return fmt.Errorf("%w: platform widths [%.0f, %.0f] are not a range",
			ErrInvalidConfig, c.Platforms.MinWidth, c.Platforms.MaxWidth)
	case c.Platforms.GapMin < 0 || c.Platforms.GapMin > c.Platforms.GapMax:
		return fmt.Errorf("%w: platform gaps [%.0f, %.0f] are not a range",
			ErrInvalidConfig, c.Platforms.GapMin, c.Platforms.GapMax)
	case c.Collectibles.Size <= 0:
		return fmt.Errorf("%w: collectible size must be positive", ErrInvalidConfig)
	case !isProbability(c.Collectibles.SpawnChance):
		return fmt.Errorf("%w: spawn_chance %.2f outside [0, 1]", ErrInvalidConfig, c.Collectibles.SpawnChance)
	case !isProbability(c.Collectibles.PowerUpShare + c.Collectibles.CoalShare + c.Collectibles.CocoaShare):
		return fmt.Errorf("%w: collectible shares exceed 1", ErrInvalidConfig)
	case len(c.Collectibles.PresentColor) == 0:
		return fmt.Errorf("%w: present_colors is empty", ErrInvalidConfig)
	case c.PowerUps.Duration <= 0:
		return fmt.Errorf("%w: powerup duration must be positive", ErrInvalidConfig)
	case c.Difficulty.BaseSpeed <= 0 || c.Difficulty.BaseSpeed > c.Difficulty.MaxSpeed:
		return fmt.Errorf("%w: speeds [%.2f, %.2f] are not a range",
			ErrInvalidConfig, c.Difficulty.BaseSpeed, c.Difficulty.MaxSpeed)
	case c.Difficulty.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed_increment must not be negative", ErrInvalidConfig)
	case c.Particles.TrailEvery <= 0:
		return fmt.Errorf("%w: trail_every must be positive", ErrInvalidConfig)
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
