package main

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type config struct {
	LogLevel    string `yaml:"log_level"`
	Color       string `yaml:"color"`
	Development bool   `yaml:"development"`
	ShowYAML    bool   `yaml:"show_yaml"`
}

var defaultConfig = config{
	LogLevel: "warn",
	Color:    "auto",
}

// loadConfig reads path, if set, and fills unset fields from the defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := mergo.Merge(&cfg, defaultConfig); err != nil {
		return cfg, fmt.Errorf("merge config: %w", err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("config: color must be auto, always or never, got %q", cfg.Color)
	}
	return cfg, nil
}

func (c config) logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
