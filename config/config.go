// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Eye       EyeConfig       `yaml:"eye"`
	Agent     AgentConfig     `yaml:"agent"`
	Evolution EvolutionConfig `yaml:"evolution"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WorldConfig holds population sizes. Both are fixed for the whole run.
type WorldConfig struct {
	Agents int `yaml:"agents"`
	Foods  int `yaml:"foods"`
}

// EyeConfig holds the field of view shared by every agent.
type EyeConfig struct {
	FOVRange float64 `yaml:"fov_range"` // Maximum sight distance in world units
	FOVAngle float64 `yaml:"fov_angle"` // Full angular width in radians, centered on heading
	Cells    int     `yaml:"cells"`     // Angular sectors; also the brain's input width
}

// AgentConfig holds movement and feeding parameters.
type AgentConfig struct {
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	SpeedAccel    float64 `yaml:"speed_accel"`    // Max speed change per tick
	RotationAccel float64 `yaml:"rotation_accel"` // Max heading change per tick (radians)
	InitialSpeed  float64 `yaml:"initial_speed"`
	FeedRadius    float64 `yaml:"feed_radius"` // Agent-food distance at which food is eaten
}

// EvolutionConfig holds generation length and mutation parameters.
type EvolutionConfig struct {
	GenerationLength int     `yaml:"generation_length"` // Ticks per generation
	MutationChance   float64 `yaml:"mutation_chance"`
	MutationCoeff    float64 `yaml:"mutation_coeff"`
}

// TelemetryConfig holds driver output parameters.
type TelemetryConfig struct {
	LogEvery   int `yaml:"log_every"`    // Log every Nth generation
	HallOfFame int `yaml:"hall_of_fame"` // Best genomes kept across the run
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate rejects configurations the simulation cannot run with.
// Mutation parameters are checked again when the mutation strategy is built.
func (c *Config) Validate() error {
	switch {
	case c.World.Agents < 1:
		return fmt.Errorf("%w: world.agents must be >= 1, got %d", ErrInvalid, c.World.Agents)
	case c.World.Foods < 0:
		return fmt.Errorf("%w: world.foods must be >= 0, got %d", ErrInvalid, c.World.Foods)
	case c.Eye.Cells < 1:
		return fmt.Errorf("%w: eye.cells must be >= 1, got %d", ErrInvalid, c.Eye.Cells)
	case c.Eye.FOVRange <= 0:
		return fmt.Errorf("%w: eye.fov_range must be > 0, got %v", ErrInvalid, c.Eye.FOVRange)
	case c.Eye.FOVAngle <= 0:
		return fmt.Errorf("%w: eye.fov_angle must be > 0, got %v", ErrInvalid, c.Eye.FOVAngle)
	case c.Agent.SpeedMin > c.Agent.SpeedMax:
		return fmt.Errorf("%w: agent.speed_min %v exceeds speed_max %v", ErrInvalid, c.Agent.SpeedMin, c.Agent.SpeedMax)
	case c.Agent.InitialSpeed < c.Agent.SpeedMin || c.Agent.InitialSpeed > c.Agent.SpeedMax:
		return fmt.Errorf("%w: agent.initial_speed %v outside [%v, %v]", ErrInvalid, c.Agent.InitialSpeed, c.Agent.SpeedMin, c.Agent.SpeedMax)
	case c.Agent.SpeedAccel < 0:
		return fmt.Errorf("%w: agent.speed_accel must be >= 0, got %v", ErrInvalid, c.Agent.SpeedAccel)
	case c.Agent.RotationAccel < 0:
		return fmt.Errorf("%w: agent.rotation_accel must be >= 0, got %v", ErrInvalid, c.Agent.RotationAccel)
	case c.Agent.FeedRadius < 0:
		return fmt.Errorf("%w: agent.feed_radius must be >= 0, got %v", ErrInvalid, c.Agent.FeedRadius)
	case c.Evolution.GenerationLength < 0:
		return fmt.Errorf("%w: evolution.generation_length must be >= 0, got %d", ErrInvalid, c.Evolution.GenerationLength)
	case c.Telemetry.LogEvery < 1:
		return fmt.Errorf("%w: telemetry.log_every must be >= 1, got %d", ErrInvalid, c.Telemetry.LogEvery)
	case c.Telemetry.HallOfFame < 0:
		return fmt.Errorf("%w: telemetry.hall_of_fame must be >= 0, got %d", ErrInvalid, c.Telemetry.HallOfFame)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
