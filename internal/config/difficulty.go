package config

import (
	"math"
	"time"
)

// DifficultyManager owns the global speed multiplier and its time-based ramp.
type DifficultyManager struct {
	cfg        DifficultyConfig
	multiplier float64
	lastRampAt time.Duration
}

// NewDifficultyManager creates a new difficulty manager at the base multiplier.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset(0)
	return d
}

// Reset restores the base multiplier and restarts the ramp clock at now.
func (d *DifficultyManager) Reset(now time.Duration) {
	d.multiplier = clampF(d.cfg.BaseMultiplier, d.cfg.MinMultiplier, d.cfg.MaxMultiplier)
	d.lastRampAt = now
}

// SetEnabled enables or disables the time ramp.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the time ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Multiplier returns the current speed multiplier.
func (d *DifficultyManager) Multiplier() float64 {
	return d.multiplier
}

// ButtonStep returns the change applied by one faster/slower command.
func (d *DifficultyManager) ButtonStep() float64 {
	return d.cfg.ButtonStep
}

// Adjust adds delta to the multiplier, clamped to the configured bounds.
// It returns the multiplier before and after the change.
func (d *DifficultyManager) Adjust(delta float64) (prev, next float64) {
	prev = d.multiplier
	d.multiplier = clampF(prev+delta, d.cfg.MinMultiplier, d.cfg.MaxMultiplier)
	return prev, d.multiplier
}

// Interval scales a base spawn interval by the multiplier: faster means shorter.
func (d *DifficultyManager) Interval(base time.Duration) time.Duration {
	return time.Duration(float64(base) / d.multiplier)
}

// Ramp reports whether a ramp step is due at now and returns its size.
// Nothing is due while the multiplier sits at its maximum; the ramp clock
// only advances when a step is handed out.
func (d *DifficultyManager) Ramp(now time.Duration) (float64, bool) {
	if !d.cfg.Enabled || d.multiplier >= d.cfg.MaxMultiplier {
		return 0, false
	}
	if now-d.lastRampAt < d.cfg.Ramp.Every {
		return 0, false
	}
	d.lastRampAt = now
	return d.cfg.Ramp.Step, true
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
