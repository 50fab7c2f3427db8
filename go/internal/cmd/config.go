package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgrosjean/fightcard/go/internal/events"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Events struct {
		Enabled       bool   `yaml:"enabled"`
		URL           string `yaml:"url"`
		StreamName    string `yaml:"stream_name"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"events"`
}

func defaultConfig() *Config {
	config := &Config{}
	config.Server.Port = getEnv("PORT", "8080")
	ev := events.DefaultConfig()
	config.Events.URL = getEnv("NATS_URL", ev.URL)
	config.Events.StreamName = ev.StreamName
	config.Events.SubjectPrefix = ev.SubjectPrefix
	return config
}

// loadConfig reads the yaml config file. A missing file is not an error;
// defaults and environment variables apply instead.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Server.Port == "" {
		config.Server.Port = getEnv("PORT", "8080")
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
