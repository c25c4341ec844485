package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			LockDelay:  0.5,
			LineClear:  0.35,
			LevelPopup: 1.2,
		},
		Gravity: GravityConfig{
			Base:           0.8,
			PerLevel:       0.07,
			Min:            0.05,
			SoftDropFactor: 0.25,
			SoftDropCap:    0.02,
		},
		Scoring: ScoringConfig{
			LineTable:       []int{0, 40, 100, 300, 1200},
			HardDropPerCell: 2,
			SoftDropPerCell: 1,
			LinesPerLevel:   10,
		},
		Display: DisplayConfig{
			NextPreview: 3,
			Ghost:       true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
