package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt            = 0.0001
	DefaultDuration      = 1.0
	DefaultPulseDuration = 0.2
	DefaultAmplitude     = 1.0
)

type Config struct {
	Excitation string         `yaml:"excitation"`
	Integrator string         `yaml:"integrator"`
	Muscle     string         `yaml:"muscle"`
	Dt         float64        `yaml:"dt"`
	Duration   float64        `yaml:"duration"`
	Stimulus   StimulusConfig `yaml:"stimulus"`
}

type StimulusConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Duration  float64 `yaml:"duration"`
	Period    float64 `yaml:"period"`
	Rise      float64 `yaml:"rise"`
}

func DefaultConfig() *Config {
	return &Config{
		Excitation: "pulse",
		Integrator: "rk4",
		Muscle:     "linear",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Stimulus: StimulusConfig{
			Amplitude: DefaultAmplitude,
			Duration:  DefaultPulseDuration,
		},
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
