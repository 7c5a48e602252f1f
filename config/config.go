// Package config loads solver settings with Viper from a YAML file,
// GRIDPATHS_-prefixed environment variables and flag bindings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sayotte/gridpaths/racetrack"
	"github.com/sayotte/gridpaths/ramrun"
)

const EnvPrefix = "GRIDPATHS"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	RAMRun    RAMRunConfig    `mapstructure:"ramrun" yaml:"ramrun"`
	Racetrack RacetrackConfig `mapstructure:"racetrack" yaml:"racetrack"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type RAMRunConfig struct {
	Size  int `mapstructure:"size" yaml:"size"`
	Bytes int `mapstructure:"bytes" yaml:"bytes"`
}

type RacetrackConfig struct {
	Threshold  int `mapstructure:"threshold" yaml:"threshold"`
	ShortCheat int `mapstructure:"short_cheat" yaml:"short_cheat"`
	LongCheat  int `mapstructure:"long_cheat" yaml:"long_cheat"`
}

// SetDefaults registers every key's default on v and wires the environment
// overrides (GRIDPATHS_RAMRUN_SIZE and so on).
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ramrun.size", ramrun.DefaultSize)
	v.SetDefault("ramrun.bytes", ramrun.DefaultBytes)
	v.SetDefault("racetrack.threshold", racetrack.DefaultThreshold)
	v.SetDefault("racetrack.short_cheat", racetrack.DefaultShortCheat)
	v.SetDefault("racetrack.long_cheat", racetrack.DefaultLongCheat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates v. Call SetDefaults (and read any config
// file) first.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if c.RAMRun.Size <= 0 {
		return fmt.Errorf("%w: ramrun.size must be positive, got %d", ErrInvalidConfig, c.RAMRun.Size)
	}
	if c.RAMRun.Bytes <= 0 {
		return fmt.Errorf("%w: ramrun.bytes must be positive, got %d", ErrInvalidConfig, c.RAMRun.Bytes)
	}
	if c.Racetrack.Threshold <= 0 {
		return fmt.Errorf("%w: racetrack.threshold must be positive, got %d", ErrInvalidConfig, c.Racetrack.Threshold)
	}
	if c.Racetrack.ShortCheat <= 0 || c.Racetrack.LongCheat <= 0 {
		return fmt.Errorf("%w: racetrack cheat lengths must be positive", ErrInvalidConfig)
	}
	return nil
}
