package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"lifeplane/internal/core"
)

// Config represents the command-line parameters for the application. Values
// can also come from a JSON file named by -config; explicit flags win.
type Config struct {
	File     string  `json:"-"`
	Scale    float64 `json:"scale"`
	TPS      int     `json:"tps"`
	Interval int     `json:"interval"`
	Seed     int64   `json:"seed"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Rule     string  `json:"rule"`
	Density  int     `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:    10,
		TPS:      60,
		Interval: 5,
		Seed:     42,
		Width:    1280,
		Height:   800,
		Rule:     core.Conway.String(),
		Density:  30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "initial pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Interval, "interval", c.Interval, "ticks per generation while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule in B/S notation")
	fs.IntVar(&c.Density, "density", c.Density, "random soup density in percent")
}

// Parse binds c to fs and parses args. When -config is given the file is
// applied first and args are parsed again on top of it.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File != "" {
		if err := LoadConfig(c.File, c); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	return c.Validate()
}

// LoadConfig reads a JSON config file into c. Keys absent from the file keep
// their current values.
func LoadConfig(filename string, c *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.Interval < minInterval || c.Interval > maxInterval:
		return errors.Errorf("interval must be in [%d, %d], got %d", minInterval, maxInterval, c.Interval)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	case c.Density < minDensity || c.Density > maxDensity:
		return errors.Errorf("density must be in [%d, %d], got %d", minDensity, maxDensity, c.Density)
	}
	if _, err := core.ParseRule(c.Rule); err != nil {
		return errors.Wrap(err, "invalid -rule")
	}
	return nil
}

// ParsedRule returns the configured rule, falling back to Conway.
func (c *Config) ParsedRule() core.Rule {
	r, err := core.ParseRule(c.Rule)
	if err != nil {
		return core.Conway
	}
	return r
}
