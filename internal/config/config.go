// Package config loads mapdeck's TOML configuration: gesture and spring
// tuning, sheet geometry ratios, and the map seed. Missing files fall
// back to defaults; a malformed file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"mapdeck/internal/geom"
	"mapdeck/internal/sheet"
)

// Config is the full application configuration.
type Config struct {
	MapSeed      uint64  `koanf:"map_seed"`
	PointsPerRow float64 `koanf:"points_per_row"`

	Gesture GestureConfig `koanf:"gesture"`
	Spring  SpringConfig  `koanf:"spring"`
	Sheets  SheetsConfig  `koanf:"sheets"`
}

// GestureConfig tunes drag-release resolution. Velocities are points
// per second, distances points.
type GestureConfig struct {
	FlingVelocity     float64 `koanf:"fling_velocity"`
	SmallMovement     float64 `koanf:"small_movement"`
	ProjectionDamping float64 `koanf:"projection_damping"`
	MaxSpringVelocity float64 `koanf:"max_spring_velocity"`
}

// SpringConfig tunes the settle animation.
type SpringConfig struct {
	FPS       int     `koanf:"fps"`
	Frequency float64 `koanf:"frequency"`
	Damping   float64 `koanf:"damping"`
}

// SheetsConfig tunes snap geometry. The results sheet keeps a lower
// middle position than the secondary overlays so more of the list shows.
type SheetsConfig struct {
	ResultsMiddleRatio float64 `koanf:"results_middle_ratio"`
	OverlayMiddleRatio float64 `koanf:"overlay_middle_ratio"`
	MinMiddleGap       float64 `koanf:"min_middle_gap"`
	CollapsedVisible   float64 `koanf:"collapsed_visible"`
	HiddenOvershoot    float64 `koanf:"hidden_overshoot"`
}

// Default returns the stock configuration.
func Default() *Config {
	th := sheet.DefaultThresholds()
	sp := sheet.DefaultSpring()
	tn := geom.Defaults()
	return &Config{
		MapSeed:      1977,
		PointsPerRow: 40,
		Gesture: GestureConfig{
			FlingVelocity:     th.FlingVelocity,
			SmallMovement:     th.SmallMovement,
			ProjectionDamping: th.ProjectionDamping,
			MaxSpringVelocity: th.MaxSpringVelocity,
		},
		Spring: SpringConfig{
			FPS:       sp.FPS,
			Frequency: sp.Frequency,
			Damping:   sp.Damping,
		},
		Sheets: SheetsConfig{
			ResultsMiddleRatio: tn.MiddleRatio,
			OverlayMiddleRatio: 0.5,
			MinMiddleGap:       tn.MinMiddleGap,
			CollapsedVisible:   tn.CollapsedVisible,
			HiddenOvershoot:    tn.HiddenOvershoot,
		},
	}
}

// Load reads the configuration, trying each candidate path in priority
// order (last wins) on top of defaults.
func Load() (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// LoadPath reads one explicit config file on top of defaults.
func LoadPath(path string) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "mapdeck", "config.toml"),
		"mapdeck.toml",
	}
}

// sanitize clamps tunables into ranges the sheet machinery tolerates.
// Out-of-range values come from hand-edited files and are corrected
// silently rather than refused.
func (c *Config) sanitize() {
	clampF := func(v *float64, lo, hi float64) {
		if *v < lo {
			*v = lo
		}
		if *v > hi {
			*v = hi
		}
	}
	clampF(&c.PointsPerRow, 8, 120)
	clampF(&c.Gesture.FlingVelocity, 100, 10_000)
	clampF(&c.Gesture.SmallMovement, 4, 400)
	clampF(&c.Gesture.ProjectionDamping, 0, 1)
	clampF(&c.Gesture.MaxSpringVelocity, c.Gesture.FlingVelocity, 20_000)
	clampF(&c.Spring.Frequency, 1, 30)
	clampF(&c.Spring.Damping, 0.3, 2)
	if c.Spring.FPS < 15 || c.Spring.FPS > 120 {
		c.Spring.FPS = 60
	}
	clampF(&c.Sheets.ResultsMiddleRatio, 0.3, 0.6)
	clampF(&c.Sheets.OverlayMiddleRatio, 0.3, 0.6)
	clampF(&c.Sheets.MinMiddleGap, 40, 400)
	clampF(&c.Sheets.CollapsedVisible, 40, 400)
	clampF(&c.Sheets.HiddenOvershoot, 0, 400)
}

// Thresholds converts the gesture section for the resolver.
func (c *Config) Thresholds() sheet.Thresholds {
	return sheet.Thresholds{
		FlingVelocity:     c.Gesture.FlingVelocity,
		SmallMovement:     c.Gesture.SmallMovement,
		ProjectionDamping: c.Gesture.ProjectionDamping,
		MaxSpringVelocity: c.Gesture.MaxSpringVelocity,
	}
}

// SpringFor converts the spring section for the animator.
func (c *Config) SpringFor() sheet.SpringConfig {
	return sheet.SpringConfig{
		FPS:       c.Spring.FPS,
		Frequency: c.Spring.Frequency,
		Damping:   c.Spring.Damping,
	}
}

// ResultsTunables returns snap geometry tuning for the results sheet.
func (c *Config) ResultsTunables() geom.Tunables {
	t := geom.Defaults()
	t.MiddleRatio = c.Sheets.ResultsMiddleRatio
	t.MinMiddleGap = c.Sheets.MinMiddleGap
	t.CollapsedVisible = c.Sheets.CollapsedVisible
	t.HiddenOvershoot = c.Sheets.HiddenOvershoot
	return t
}

// OverlayTunables returns snap geometry tuning for secondary overlays.
func (c *Config) OverlayTunables() geom.Tunables {
	t := c.ResultsTunables()
	t.MiddleRatio = c.Sheets.OverlayMiddleRatio
	return t
}
