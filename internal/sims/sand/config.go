package sand

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scenario names accepted by Config.Scenario.
const (
	ScenarioEmpty = "empty"
	ScenarioDunes = "dunes"
	ScenarioBasin = "basin"
)

// Params holds the tunable physics and scenario values.
type Params struct {
	Dispersion       int     `yaml:"dispersion"`
	ThinningChance   float64 `yaml:"thinning_chance"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Gravity          float64 `yaml:"gravity"`

	TerrainRoughness float64 `yaml:"terrain_roughness"`
	PoolDepth        int     `yaml:"pool_depth"`
}

// Config controls the sandbox world.
type Config struct {
	Boundary int    `yaml:"boundary"`
	Seed     int64  `yaml:"seed"`
	Scenario string `yaml:"scenario"`
	Brush    string `yaml:"brush"`
	Material string `yaml:"material"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	phys := DefaultPhysics()
	return Config{
		Boundary: 65,
		Seed:     1337,
		Scenario: ScenarioEmpty,
		Brush:    BrushSmall.String(),
		Material: Sand.String(),
		Params: Params{
			Dispersion:       phys.Dispersion,
			ThinningChance:   phys.ThinningChance,
			TerminalVelocity: phys.TerminalVelocity,
			Gravity:          phys.Gravity,
			TerrainRoughness: 2,
			PoolDepth:        6,
		},
	}
}

// Physics converts the params into the constants used by the steps.
func (p Params) Physics() Physics {
	return Physics{
		TerminalVelocity: p.TerminalVelocity,
		Gravity:          p.Gravity,
		ThinningChance:   p.ThinningChance,
		Dispersion:       p.Dispersion,
	}
}

// FromMap populates a Config from flag-style key/value pairs. Values that
// fail to parse or fall outside their range keep the default.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Override(cfg)
}

// Override returns c with the key/value pairs in cfg applied. Values that
// fail to parse or fall outside their range are ignored.
func (c Config) Override(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scenario"]; ok && validScenario(v) {
		c.Scenario = v
	}
	if v, ok := cfg["brush"]; ok {
		if b, err := ParseBrushSize(v); err == nil {
			c.Brush = b.String()
		}
	}
	if v, ok := cfg["material"]; ok {
		if m, err := ParseMaterial(v); err == nil && m.Paintable() {
			c.Material = m.String()
		}
	}
	if v, ok := cfg["dispersion"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Dispersion = parsed
		}
	}
	if v, ok := cfg["thinning_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ThinningChance = parsed
		}
	}
	if v, ok := cfg["terminal_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.Params.TerminalVelocity = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed != 0 {
			c.Params.Gravity = parsed
		}
	}
	if v, ok := cfg["terrain_roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TerrainRoughness = parsed
		}
	}
	if v, ok := cfg["pool_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PoolDepth = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return DefaultConfig().Load(path)
}

// ParseConfig decodes a YAML document on top of the defaults and validates
// the result.
func ParseConfig(raw []byte) (Config, error) {
	return DefaultConfig().Merge(raw)
}

// Load reads a YAML config file on top of c.
func (c Config) Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return c.Merge(raw)
}

// Merge decodes a YAML document on top of c and validates the result.
// Physics values live under the params key; unknown keys are rejected.
func (c Config) Merge(raw []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Boundary < 2 {
		return fmt.Errorf("config: boundary %d must be at least 2", c.Boundary)
	}
	if !validScenario(c.Scenario) {
		return fmt.Errorf("config: unknown scenario %q", c.Scenario)
	}
	if _, err := ParseBrushSize(c.Brush); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	m, err := ParseMaterial(c.Material)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !m.Paintable() {
		return fmt.Errorf("config: %w: %s is not paintable", ErrInvalidMaterial, m)
	}
	p := c.Params
	if p.Dispersion < 1 {
		return fmt.Errorf("config: dispersion %d must be at least 1", p.Dispersion)
	}
	if p.ThinningChance < 0 || p.ThinningChance > 1 {
		return fmt.Errorf("config: thinning_chance %v outside [0,1]", p.ThinningChance)
	}
	if p.TerminalVelocity < 1 {
		return fmt.Errorf("config: terminal_velocity %v must be at least 1", p.TerminalVelocity)
	}
	if p.Gravity == 0 {
		return fmt.Errorf("config: gravity must be non-zero")
	}
	return nil
}

func validScenario(name string) bool {
	switch name {
	case ScenarioEmpty, ScenarioDunes, ScenarioBasin:
		return true
	}
	return false
}
