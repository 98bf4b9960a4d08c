// Package config loads blizzard.json, the optional project
// configuration for the blizzard CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "blizzard.json"

	// DefaultAddress is the default preview server listen address.
	DefaultAddress = ":3000"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete blizzard.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Serve contains preview server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Build contains static build configuration.
	Build BuildConfig `json:"build,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServeConfig contains preview server configuration.
type ServeConfig struct {
	// Address is the listen address (default ":3000").
	Address string `json:"address,omitempty"`

	// DisableReload turns off live-reload script injection.
	DisableReload bool `json:"disableReload,omitempty"`
}

// BuildConfig contains static build configuration.
type BuildConfig struct {
	// Output is the build output directory (default "dist").
	Output string `json:"output,omitempty"`
}

// PublishConfig contains S3 publishing configuration.
type PublishConfig struct {
	// Bucket is the target S3 bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix objects are placed under.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket's AWS region.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Serve: ServeConfig{Address: DefaultAddress},
		Build: BuildConfig{Output: DefaultOutput},
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// LoadFromWorkingDir loads blizzard.json from the current directory.
// A missing file is not an error; defaults are returned instead.
func LoadFromWorkingDir() (*Config, error) {
	cfg, err := Load(ConfigFileName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Path returns where the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Serve.Address == "" {
		c.Serve.Address = DefaultAddress
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
}
