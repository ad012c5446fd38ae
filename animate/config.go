// Package animate paces an engine for display: how many frames pass between
// steps, pausing, and single-stepping. Nothing here knows about triangles.
package animate

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the display settings shared by the drivers
type Config struct {
	FramesPerStep int  `yaml:"frames_per_step"` // frames between engine steps
	SpeedStep     int  `yaml:"speed_step"`      // frames added or removed by Slower/Faster
	StartPaused   bool `yaml:"start_paused"`

	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Scale        float64 `yaml:"scale"` // pixels per unit in saved frames
}

func DefaultConfig() Config {
	return Config{
		FramesPerStep: 4,
		SpeedStep:     2,
		StartPaused:   true,
		WindowWidth:   1280,
		WindowHeight:  720,
		Scale:         1,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file
// keep their default values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %q", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "config %q", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.FramesPerStep < 1 {
		return errors.Errorf("frames_per_step must be at least 1, got %d", c.FramesPerStep)
	}
	if c.SpeedStep < 1 {
		return errors.Errorf("speed_step must be at least 1, got %d", c.SpeedStep)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return errors.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	return nil
}
