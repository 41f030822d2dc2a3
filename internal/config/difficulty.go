package config

import "math"

// DifficultyManager owns the scroll speed progression: the initial speed
// from the preset level, the per-frame ramp toward the cap and the
// Speed power-up boost.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedIncrement > 0
}

// InitialSpeed returns the scroll speed a run starts at.
func (d *DifficultyManager) InitialSpeed() float64 {
	return d.cfg.BaseSpeed + d.initialLevel*(d.cfg.MaxSpeed-d.cfg.BaseSpeed)
}

// Advance returns the speed after one frame of progression. The result
// never exceeds the cap and never drops below the input.
func (d *DifficultyManager) Advance(speed float64) float64 {
	if !d.IsEnabled() || speed >= d.cfg.MaxSpeed {
		return speed
	}
	return math.Min(speed+d.cfg.SpeedIncrement, d.cfg.MaxSpeed)
}

// Effective returns the distance scrolled this frame, applying the
// Speed power-up factor when boosted.
func (d *DifficultyManager) Effective(speed float64, boosted bool, boost float64) float64 {
	if boosted {
		return speed * boost
	}
	return speed
}

// Level returns the progress of speed between base and cap (0.0 to 1.0).
func (d *DifficultyManager) Level(speed float64) float64 {
	span := d.cfg.MaxSpeed - d.cfg.BaseSpeed
	if span <= 0 {
		return 1.0 // Prevent division by zero
	}
	return clampF((speed-d.cfg.BaseSpeed)/span, 0.0, 1.0)
}

// MaxSpeed returns the configured cap.
func (d *DifficultyManager) MaxSpeed() float64 {
	return d.cfg.MaxSpeed
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
