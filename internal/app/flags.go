package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"particles/internal/sims/sand"
)

// Overrides collects repeated -set key=value flags.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}

// Config represents the command-line parameters for the hosts.
type Config struct {
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Set        Overrides

	// Defaults are host-specific world settings applied before the YAML
	// file and the -set overrides.
	Defaults Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 60, Set: Overrides{}, Defaults: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for world reset (0 keeps the configured seed)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world config")
	fs.Var(c.Set, "set", "override a world setting as key=value (repeatable)")
}

// World layers the host defaults, the YAML config when one is given, the
// -set overrides and the seed, in that order, and builds the world.
func (c *Config) World(vis sand.Visuals) (*sand.World, error) {
	wc := sand.DefaultConfig().Override(c.Defaults)
	if c.ConfigPath != "" {
		loaded, err := wc.Load(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		wc = loaded
	}
	wc = wc.Override(c.Set)
	if c.Seed != 0 {
		wc.Seed = c.Seed
	}
	return sand.NewWithConfig(wc, vis), nil
}
