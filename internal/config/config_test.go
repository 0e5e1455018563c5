package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultMatchesCoreTuning(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1200.0, cfg.Gesture.FlingVelocity)
	assert.Equal(t, 40.0, cfg.Gesture.SmallMovement)
	assert.Equal(t, 0.05, cfg.Gesture.ProjectionDamping)
	assert.Equal(t, 0.4, cfg.Sheets.ResultsMiddleRatio)
	assert.Equal(t, 60, cfg.Spring.FPS)
}

func TestLoadPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
map_seed = 7
points_per_row = 32

[gesture]
fling_velocity = 900.0

[sheets]
overlay_middle_ratio = 0.45
`)

	cfg, err := LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.MapSeed)
	assert.Equal(t, 32.0, cfg.PointsPerRow)
	assert.Equal(t, 900.0, cfg.Gesture.FlingVelocity)
	assert.Equal(t, 0.45, cfg.Sheets.OverlayMiddleRatio)
	// Untouched sections keep their defaults.
	assert.Equal(t, 40.0, cfg.Gesture.SmallMovement)
}

func TestLoadPathMalformed(t *testing.T) {
	path := writeConfig(t, "not [valid toml")
	_, err := LoadPath(path)
	assert.Error(t, err, "malformed config should fail to load")
}

func TestSanitizeClampsNonsense(t *testing.T) {
	path := writeConfig(t, `
points_per_row = -5

[gesture]
small_movement = 99999.0

[sheets]
results_middle_ratio = 0.9
`)

	cfg, err := LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.PointsPerRow, "points per row clamps to the floor")
	assert.Equal(t, 400.0, cfg.Gesture.SmallMovement, "small movement clamps to the ceiling")
	assert.Equal(t, 0.6, cfg.Sheets.ResultsMiddleRatio, "middle ratio clamps to the ceiling")
}

func TestResultsAndOverlayTunablesDiffer(t *testing.T) {
	cfg := Default()
	assert.NotEqual(t, cfg.ResultsTunables().MiddleRatio, cfg.OverlayTunables().MiddleRatio,
		"results and overlay middle ratios should differ by default")
}
