package config

import "math"

// GravityCurve calculates gravity intervals from the current level.
type GravityCurve struct {
	cfg GravityConfig
}

// NewGravityCurve creates a gravity curve for the given parameters.
func NewGravityCurve(cfg GravityConfig) GravityCurve {
	return GravityCurve{cfg: cfg}
}

// Interval returns the seconds per cell of natural gravity at level.
func (g GravityCurve) Interval(level int) float64 {
	return math.Max(g.cfg.Base-float64(level)*g.cfg.PerLevel, g.cfg.Min)
}

// SoftDropInterval returns the seconds per cell while soft drop is held.
func (g GravityCurve) SoftDropInterval(level int) float64 {
	return math.Min(g.cfg.SoftDropCap, g.Interval(level)*g.cfg.SoftDropFactor)
}

// Speed returns the interval that applies for the given soft-drop state.
func (g GravityCurve) Speed(level int, softDrop bool) float64 {
	if softDrop {
		return g.SoftDropInterval(level)
	}
	return g.Interval(level)
}
