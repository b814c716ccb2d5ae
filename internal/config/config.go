// Package config handles meshgen configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/chazu/meshprim/internal/logger"
	"github.com/chazu/meshprim/pkg/kernel/parametric"
	"github.com/chazu/meshprim/pkg/kernel/sdfx"
)

// Kernel names accepted in KernelConfig.Name.
const (
	KernelParametric = "parametric"
	KernelSdfx       = "sdfx"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all meshgen settings.
type Config struct {
	Resolution parametric.Options `yaml:"resolution"`
	Kernel     KernelConfig       `yaml:"kernel"`
	Engine     EngineConfig       `yaml:"engine"`
	Logging    LoggingConfig      `yaml:"logging"`
}

// KernelConfig selects the geometry kernel.
type KernelConfig struct {
	Name      string `yaml:"name"`
	SdfxCells int    `yaml:"sdfx_cells"` // marching cubes cells along the longest axis
}

// EngineConfig holds DSL evaluation settings.
type EngineConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging settings. File logging is off while
// File.Path is empty.
type LoggingConfig struct {
	Level   string            `yaml:"level"`
	Console bool              `yaml:"console"`
	File    logger.FileConfig `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Resolution: parametric.DefaultOptions(),
		Kernel: KernelConfig{
			Name:      KernelParametric,
			SdfxCells: sdfx.DefaultMeshCells,
		},
		Engine: EngineConfig{
			Timeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    logger.DefaultFileConfig(""),
		},
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	counts := []struct {
		key string
		n   int
	}{
		{"resolution.sphere", c.Resolution.SphereResolution},
		{"resolution.circle", c.Resolution.CircleResolution},
		{"resolution.cylinder", c.Resolution.CylinderFacets},
		{"resolution.rect", c.Resolution.RectResolution},
		{"kernel.sdfx_cells", c.Kernel.SdfxCells},
		{"logging.file.max_size_mb", c.Logging.File.MaxSizeMB},
		{"logging.file.max_backups", c.Logging.File.MaxBackups},
		{"logging.file.max_age_days", c.Logging.File.MaxAgeDays},
	}
	for _, f := range counts {
		if f.n < 0 {
			return fmt.Errorf("%w: %s is %d, must not be negative", ErrInvalid, f.key, f.n)
		}
	}
	switch c.Kernel.Name {
	case KernelParametric, KernelSdfx:
	default:
		return fmt.Errorf("%w: kernel.name %q, want %q or %q", ErrInvalid, c.Kernel.Name, KernelParametric, KernelSdfx)
	}
	if c.Engine.Timeout < 0 {
		return fmt.Errorf("%w: engine.timeout %s is negative", ErrInvalid, c.Engine.Timeout)
	}
	if _, ok := logger.LookupLevel(c.Logging.Level); !ok {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
