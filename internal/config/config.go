package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	// Server settings
	ListenAddr string `yaml:"listen_addr"`
	Debug      bool   `yaml:"debug"`

	// Directories
	DataDirectory   string `yaml:"data_directory"`
	StaticDirectory string `yaml:"static_directory"`
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Config{
		ListenAddr:      ":8080",
		Debug:           false,
		DataDirectory:   filepath.Join(wd, "data"),
		StaticDirectory: filepath.Join(wd, "web", "static"),
	}
}

// Load assembles configuration in three layers: defaults, an optional
// YAML config file, then environment variable overrides.
func Load() *Config {
	cfg := DefaultConfig()

	path := os.Getenv("SALARYCAST_CONFIG")
	if path == "" {
		if _, err := os.Stat("salarycast.yaml"); err == nil {
			path = "salarycast.yaml"
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			log.Printf("Warning: could not load config file %s: %v", path, err)
		}
	}

	// Override with environment variables
	if addr := os.Getenv("SALARYCAST_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if debug := os.Getenv("SALARYCAST_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}
	if dataDir := os.Getenv("SALARYCAST_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
	}
	if staticDir := os.Getenv("SALARYCAST_STATIC_DIR"); staticDir != "" {
		cfg.StaticDirectory = staticDir
	}

	return cfg
}

// loadFile merges values from a YAML config file into the config
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}
