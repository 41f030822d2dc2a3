package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default Northern Lights Dash configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		World: WorldConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			Thrust:       -0.9,
			FloatGravity: 0.4,
			MinVelocity:  -12,
			MaxVelocity:  15,
		},
		Player: PlayerConfig{
			X:            100,
			Width:        80,
			Height:       60,
			StaminaMax:   100,
			StaminaDrain: 0.25,
			StaminaRegen: 2.0,
		},
		Platforms: PlatformConfig{
			Height:           20,
			MinWidth:         100,
			MaxWidth:         300,
			GapMin:           80,
			GapMax:           200,
			SpawnOffset:      50,
			VerticalJitter:   300,
			SafeMargin:       100,
			LandingTolerance: 15,
			CullMargin:       100,
			StartX:           50,
			StartDrop:        100,
			StartWidth:       400,
		},
		Collectibles: CollectibleConfig{
			Size:         30,
			SpawnChance:  0.7,
			PowerUpShare: 0.1,
			CoalShare:    0.1,
			CocoaShare:   0.1,
			MinLift:      50,
			LiftRange:    100,
			EdgeInset:    40,
			CullMargin:   50,
			MagnetRadius: 250,
			MagnetPull:   0.15,
			CocoaRefill:  40,
			CoalStamina:  30,
			PresentColor: []string{"#ef4444", "#22c55e", "#eab308", "#3b82f6"},
			CoalColor:    "#1c1917",
			CocoaColor:   "#dc2626",
		},
		Scoring: ScoringConfig{
			Present:      100,
			PowerUp:      50,
			CoalPenalty:  200,
			SurvivalRate: 0.1,
			Multiplier:   2,
		},
		PowerUps: PowerUpConfig{
			Duration:    5 * time.Second,
			SpeedBoost:  1.5,
			MagnetColor: "#f472b6",
			SpeedColor:  "#60a5fa",
			FloatColor:  "#a78bfa",
			ScoreColor:  "#fbbf24",
		},
		Particles: ParticleConfig{
			Decay:        0.03,
			ScrollFactor: 0.5,
			TrailEvery:   3,
			ExhaustCount: 2,
			BurstCount:   8,
			TrailColor:   "#fbbf24",
			FloatColor:   "#a855f7",
			ExhaustColor: "#ffffff",
			SootColor:    "#44403c",
			SteamColor:   "#ffffff",
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialLevel:   0.0,
			BaseSpeed:      5,
			MaxSpeed:       12,
			SpeedIncrement: 0.001,
		},
		Input: InputConfig{
			KeyHoldTicks: 8,
		},
		HUD: HUDConfig{
			PowerUpSyncEvery: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dash":
		return defaultDashYAML
	default:
		return nil
	}
}
