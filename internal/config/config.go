// Package config holds the explicit configuration consumed by the bazinga
// CLI wrapper. The numeric core never reads configuration on its own: the
// CLI resolves a Config (defaults ← optional YAML file ← flags) and passes
// the values into pattern.Options by hand, so no ambient environment or
// working-directory discovery leaks into the pipeline.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bazinga/fractal"
	"github.com/katalvlaran/bazinga/pattern"
)

// Config mirrors the pipeline's option surface plus CLI-only concerns.
type Config struct {
	// Depth is the fractal iteration bound, in [1, 20].
	Depth int `yaml:"depth"`
	// CycleDays is the principle cycle length, > 0.
	CycleDays int `yaml:"cycle_days"`
	// Trajectory enables orbit capture for the visualization renderers.
	Trajectory bool `yaml:"trajectory"`
	// Verbose switches CLI logging to debug level.
	Verbose bool `yaml:"verbose"`
}

// Default returns the canonical configuration, matching
// pattern.DefaultOptions.
func Default() Config {
	return Config{
		Depth:      10,
		CycleDays:  40,
		Trajectory: false,
		Verbose:    false,
	}
}

// Load reads path and merges it over the defaults. An empty path returns
// the defaults unchanged. The merged result is validated with the same
// sentinels the pipeline itself uses, so a bad file fails before any
// computation.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the pipeline-facing fields against the pattern sentinels.
func (c Config) Validate() error {
	if c.Depth < fractal.MinDepth || c.Depth > fractal.MaxDepth {
		return pattern.ErrBadDepth
	}
	if c.CycleDays <= 0 {
		return pattern.ErrBadCycleDays
	}

	return nil
}

// Options converts the Config into pipeline options.
func (c Config) Options() pattern.Options {
	return pattern.Options{
		Depth:            c.Depth,
		CycleDays:        c.CycleDays,
		ReturnTrajectory: c.Trajectory,
	}
}
