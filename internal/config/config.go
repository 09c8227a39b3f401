package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Quiz struct {
		Dir  string `yaml:"dir"`  // banks served over websocket
		File string `yaml:"file"` // bank used by play, author and check
		TTL  string `yaml:"ttl"`
	} `yaml:"quiz"`
	Player struct {
		Shuffle     bool `yaml:"shuffle"`
		Limit       int  `yaml:"limit"`
		PassPercent int  `yaml:"pass_percent"`
		Bell        bool `yaml:"bell"`
	} `yaml:"player"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Quiz.Dir = "."
	cfg.Quiz.File = "quiz_entries.txt"
	cfg.Player.PassPercent = 50
	return cfg
}

// Load reads YAML config from path on top of Default. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
