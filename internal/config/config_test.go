package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 24, cfg.Resolution.SphereResolution)
	assert.Equal(t, 64, cfg.Resolution.CircleResolution)
	assert.Equal(t, 30, cfg.Resolution.CylinderFacets)
	assert.Equal(t, 2, cfg.Resolution.RectResolution)

	assert.Equal(t, KernelParametric, cfg.Kernel.Name)
	assert.Equal(t, 200, cfg.Kernel.SdfxCells)
	assert.Equal(t, 5*time.Second, cfg.Engine.Timeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Logging.File.Path)
	assert.Equal(t, 20, cfg.Logging.File.MaxSizeMB)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshgen.yaml")
	content := `
resolution:
  sphere: 12
  cylinder: 16
kernel:
  name: sdfx
  sdfx_cells: 64
engine:
  timeout: 2s
logging:
  level: debug
  console: false
  file:
    path: meshgen.log
    max_backups: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Resolution.SphereResolution)
	assert.Equal(t, 16, cfg.Resolution.CylinderFacets)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 64, cfg.Resolution.CircleResolution)
	assert.Equal(t, 2, cfg.Resolution.RectResolution)

	assert.Equal(t, KernelSdfx, cfg.Kernel.Name)
	assert.Equal(t, 64, cfg.Kernel.SdfxCells)
	assert.Equal(t, 2*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.Equal(t, "meshgen.log", cfg.Logging.File.Path)
	assert.Equal(t, 7, cfg.Logging.File.MaxBackups)
	// Rotation keys absent from the file keep their defaults.
	assert.Equal(t, 14, cfg.Logging.File.MaxAgeDays)
	assert.True(t, cfg.Logging.File.Compress)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resolution: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kernel:\n  name: manifold\n"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("resolution:\n  circle: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Resolution.CircleResolution)
	assert.Equal(t, 24, cfg.Resolution.SphereResolution)

	_, err = Parse([]byte("resolution:\n  sphere: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative sphere", func(c *Config) { c.Resolution.SphereResolution = -1 }},
		{"negative circle", func(c *Config) { c.Resolution.CircleResolution = -4 }},
		{"negative facets", func(c *Config) { c.Resolution.CylinderFacets = -8 }},
		{"negative rect", func(c *Config) { c.Resolution.RectResolution = -2 }},
		{"negative cells", func(c *Config) { c.Kernel.SdfxCells = -1 }},
		{"unknown kernel", func(c *Config) { c.Kernel.Name = "cgal" }},
		{"negative timeout", func(c *Config) { c.Engine.Timeout = -time.Second }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty level", func(c *Config) { c.Logging.Level = "" }},
		{"negative log size", func(c *Config) { c.Logging.File.MaxSizeMB = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	// Zero resolutions select the built-in defaults and are valid.
	cfg := Default()
	cfg.Resolution.SphereResolution = 0
	assert.NoError(t, cfg.Validate())

	// Every level name the logger accepts is valid here too.
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "WARNING"} {
		cfg := Default()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Kernel.Name = KernelSdfx
	cfg.Engine.Timeout = 1500 * time.Millisecond
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
