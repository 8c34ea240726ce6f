package engine

import (
	goerrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Render dedup policies. Whether a render is skipped when a property is
// assigned its current value is a documented policy choice, not an emergent
// behavior; "equal" is the default.
const (
	// DedupEqual skips dirty marking when a property is assigned a value
	// shallow-equal to its current one.
	DedupEqual = "equal"
	// DedupAlways marks dirty on every assignment, equal or not.
	DedupAlways = "always"
)

// Config represents the optional lwc.yaml configuration.
type Config struct {
	// RenderDedup selects the value-equality render skip policy:
	// "equal" (default) or "always".
	RenderDedup string `yaml:"render_dedup,omitempty"`
	// Verbose includes kind and instance identity in advisory log lines.
	Verbose bool `yaml:"verbose,omitempty"`
	// SnapshotTracked includes tracked state in instance snapshots.
	SnapshotTracked bool `yaml:"snapshot_tracked,omitempty"`
}

// DefaultConfig returns the configuration used when no lwc.yaml is present.
func DefaultConfig() Config {
	return Config{RenderDedup: DedupEqual, SnapshotTracked: true}
}

func (c Config) withDefaults() Config {
	if c.RenderDedup == "" {
		c.RenderDedup = DedupEqual
	}
	return c
}

func (c Config) dedupEqual() bool {
	return c.RenderDedup != DedupAlways
}

// ParseConfig parses a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse lwc config: %w", err)
	}
	cfg = cfg.withDefaults()
	if cfg.RenderDedup != DedupEqual && cfg.RenderDedup != DedupAlways {
		return Config{}, fmt.Errorf("invalid render_dedup policy %q", cfg.RenderDedup)
	}
	return cfg, nil
}

// LoadConfig reads lwc.yaml from the given path if present, falling back to
// defaults when the file does not exist.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}
