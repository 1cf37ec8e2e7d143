// Package config loads lesson configuration from YAML files and holds the
// built-in presets. CLI flags override file values; files override
// defaults.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme = "cyberpunk"
	DefaultFPS   = 30
)

type Config struct {
	Lesson string             `yaml:"lesson"`
	Mode   string             `yaml:"mode"`
	Theme  string             `yaml:"theme"`
	FPS    int                `yaml:"fps"`
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Lesson: "riemann",
		Theme:  DefaultTheme,
		FPS:    DefaultFPS,
		Params: map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Params == nil {
		cfg.Params = map[string]float64{}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
