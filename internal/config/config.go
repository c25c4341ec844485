// Package config provides YAML-based game configuration loading and
// the gravity curve for the tetris engine.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunable parameters of the tetris engine.
type TetrisConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// TimingConfig defines the lock delay and animation durations, in seconds.
type TimingConfig struct {
	LockDelay  float64 `yaml:"lock_delay"`
	LineClear  float64 `yaml:"line_clear"`
	LevelPopup float64 `yaml:"level_popup"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	Base           float64 `yaml:"base"`      // Seconds per cell at level 0
	PerLevel       float64 `yaml:"per_level"` // Seconds subtracted per level
	Min            float64 `yaml:"min"`       // Lower bound of the natural interval
	SoftDropFactor float64 `yaml:"soft_drop_factor"`
	SoftDropCap    float64 `yaml:"soft_drop_cap"`
}

// ScoringConfig defines points awarded by the engine.
type ScoringConfig struct {
	LineTable       []int `yaml:"line_table"` // Indexed by rows cleared at once (0-4)
	HardDropPerCell int   `yaml:"hard_drop_per_cell"`
	SoftDropPerCell int   `yaml:"soft_drop_per_cell"`
	LinesPerLevel   int   `yaml:"lines_per_level"`
}

// DisplayConfig defines what renderers show.
type DisplayConfig struct {
	NextPreview int  `yaml:"next_preview"`
	Ghost       bool `yaml:"ghost"`
}

// Validate reports every setting that would make the engine misbehave,
// joined into one error.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Timing.LockDelay <= 0 || c.Timing.LineClear <= 0 || c.Timing.LevelPopup < 0 {
		errs = append(errs, errors.New("timing values must be positive"))
	}
	if c.Gravity.Base <= 0 || c.Gravity.Min <= 0 || c.Gravity.PerLevel < 0 {
		errs = append(errs, errors.New("gravity base and min must be positive"))
	}
	if c.Gravity.SoftDropFactor <= 0 || c.Gravity.SoftDropCap <= 0 {
		errs = append(errs, errors.New("soft drop factor and cap must be positive"))
	}
	if len(c.Scoring.LineTable) != 5 {
		errs = append(errs, fmt.Errorf("line_table needs 5 entries, got %d", len(c.Scoring.LineTable)))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("lines_per_level must be positive"))
	}
	if c.Display.NextPreview < 2 || c.Display.NextPreview > 7 {
		errs = append(errs, fmt.Errorf("next_preview must be in [2,7], got %d", c.Display.NextPreview))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// LinePoints returns the base points for clearing n rows at once.
func (s ScoringConfig) LinePoints(n int) int {
	if n < 0 || n >= len(s.LineTable) {
		return 0
	}
	return s.LineTable[n]
}
