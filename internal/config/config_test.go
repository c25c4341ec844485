package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	def := DefaultTetrisConfig()

	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("Gravity = %+v, expected %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.Display != def.Display {
		t.Errorf("Display = %+v, expected %+v", cfg.Display, def.Display)
	}
	for i, v := range def.Scoring.LineTable {
		if cfg.Scoring.LineTable[i] != v {
			t.Errorf("LineTable[%d] = %d, expected %d", i, cfg.Scoring.LineTable[i], v)
		}
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  lock_delay: 1.0\ndisplay:\n  next_preview: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Timing.LockDelay != 1.0 {
		t.Errorf("LockDelay = %f, expected 1.0", cfg.Timing.LockDelay)
	}
	if cfg.Timing.LineClear != 0.35 {
		t.Errorf("LineClear should keep its default, got %f", cfg.Timing.LineClear)
	}
	if cfg.Display.NextPreview != 5 {
		t.Errorf("NextPreview = %d, expected 5", cfg.Display.NextPreview)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("scoring:\n  line_table: [1, 2]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(bad); err == nil {
		t.Error("line_table with 2 entries should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr bool
	}{
		{"defaults", func(*TetrisConfig) {}, false},
		{"zero lock delay", func(c *TetrisConfig) { c.Timing.LockDelay = 0 }, true},
		{"negative gravity min", func(c *TetrisConfig) { c.Gravity.Min = -1 }, true},
		{"preview too small", func(c *TetrisConfig) { c.Display.NextPreview = 1 }, true},
		{"preview too large", func(c *TetrisConfig) { c.Display.NextPreview = 8 }, true},
		{"zero lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.LockDelay = 0
	cfg.Display.NextPreview = 9

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted two bad settings")
	}
	for _, want := range []string{"timing values", "next_preview"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}

func TestGravityCurve(t *testing.T) {
	g := NewGravityCurve(DefaultTetrisConfig().Gravity)

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 0.8},
		{1, 0.73},
		{5, 0.45},
		{10, 0.1},
		{11, 0.05},
		{30, 0.05},
	}

	for _, tc := range tests {
		if got := g.Interval(tc.level); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Interval(%d) = %f, expected %f", tc.level, got, tc.expected)
		}
	}

	// Soft drop: min(0.02, speed*0.25)
	if got := g.SoftDropInterval(0); math.Abs(got-0.02) > 1e-9 {
		t.Errorf("SoftDropInterval(0) = %f, expected 0.02", got)
	}
	if got := g.SoftDropInterval(20); math.Abs(got-0.0125) > 1e-9 {
		t.Errorf("SoftDropInterval(20) = %f, expected 0.0125", got)
	}
	if g.Speed(3, true) != g.SoftDropInterval(3) || g.Speed(3, false) != g.Interval(3) {
		t.Error("Speed should select the soft drop interval only when soft dropping")
	}
}

func TestLinePoints(t *testing.T) {
	s := DefaultTetrisConfig().Scoring
	expected := []int{0, 40, 100, 300, 1200}
	for n, want := range expected {
		if got := s.LinePoints(n); got != want {
			t.Errorf("LinePoints(%d) = %d, expected %d", n, got, want)
		}
	}
	if s.LinePoints(5) != 0 || s.LinePoints(-1) != 0 {
		t.Error("out-of-range row counts should score 0")
	}
}
