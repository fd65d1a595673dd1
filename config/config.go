package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/the-sequence/constants"
)

// ErrInvalid marks a configuration that fails validation
var ErrInvalid = errors.New("invalid configuration")

// Config holds runtime settings for the display loop
type Config struct {
	// Interval between displayed values
	Interval time.Duration `yaml:"interval"`

	// Debug enables file logging
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`

	// Sound enables the milestone chime; Volume is linear in [0, 1]
	Sound  bool    `yaml:"sound"`
	Volume float64 `yaml:"volume"`

	// From fast-forwards the sequence before the first tick
	From uint64 `yaml:"from"`
	// MaxSteps stops the loop after that many ticks, 0 runs until interrupted
	MaxSteps uint64 `yaml:"max_steps"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Interval: constants.TickInterval,
		LogFile:  constants.DefaultLogFile,
		Volume:   constants.DefaultChimeLevel,
	}
}

// Load reads a YAML file over the defaults
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Decode(data); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML data onto c, rejecting unknown keys
func (c *Config) Decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

// ApplyEnv overrides fields from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(constants.EnvInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvInterval, err)
		}
		c.Interval = d
	}

	if v, ok := lookup(constants.EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvDebug, err)
		}
		c.Debug = b
	}

	if v, ok := lookup(constants.EnvSound); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvSound, err)
		}
		c.Sound = b
	}

	// Volume is given as a percentage, matching common mixer settings
	if v, ok := lookup(constants.EnvVolume); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvVolume, err)
		}
		c.Volume = float64(n) / 100.0
	}

	if v, ok := lookup(constants.EnvLogFile); ok && v != "" {
		c.LogFile = v
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalid, c.Interval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume must be within [0, 1], got %v", ErrInvalid, c.Volume)
	}
	if c.Debug && c.LogFile == "" {
		return fmt.Errorf("%w: debug logging requires a log file", ErrInvalid)
	}
	return nil
}

// Marshal renders c as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
