package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	Challenge  ChallengeConfig  `yaml:"challenge" json:"challenge"`
	Balance    *Balance         `yaml:"balance" json:"balance,omitempty"`
}

type ServerConfig struct {
	Port string `yaml:"port" json:"port"`
}

type SimulationConfig struct {
	// TickSpeedMs is the real-time length of one in-game day.
	TickSpeedMs int   `yaml:"tick_speed_ms" json:"tick_speed_ms"`
	AutoStart   bool  `yaml:"auto_start" json:"auto_start"`
	Seed        int64 `yaml:"seed" json:"seed"`
}

type ChallengeConfig struct {
	DeadlineMinutes int `yaml:"deadline_minutes" json:"deadline_minutes"`
	CheckIntervalMs int `yaml:"check_interval_ms" json:"check_interval_ms"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8787"
	}
	if c.Simulation.TickSpeedMs == 0 {
		c.Simulation.TickSpeedMs = 2000
	}
	if c.Challenge.DeadlineMinutes == 0 {
		c.Challenge.DeadlineMinutes = 5
	}
	if c.Challenge.CheckIntervalMs == 0 {
		c.Challenge.CheckIntervalMs = 1000
	}
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Simulation.TickSpeedMs) * time.Millisecond
}

func (c *Config) ChallengeDeadline() time.Duration {
	return time.Duration(c.Challenge.DeadlineMinutes) * time.Minute
}

func (c *Config) ChallengeCheckInterval() time.Duration {
	return time.Duration(c.Challenge.CheckIntervalMs) * time.Millisecond
}

// GameBalance returns the balance section, falling back to defaults
// when the config file does not override it.
func (c *Config) GameBalance() Balance {
	if c.Balance != nil {
		return *c.Balance
	}
	return Default()
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
