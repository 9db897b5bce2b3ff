// Package config loads the application config from a YAML file over
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	Screen ScreenConfig `koanf:"screen"`
}

type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type ScreenConfig struct {
	DefaultPolicy string      `koanf:"default_policy"`
	Quota         QuotaConfig `koanf:"quota"`
	Allow         []string    `koanf:"allow"`
	Deny          []string    `koanf:"deny"`
}

// QuotaConfig sizes the per-caller query quota. Zero capacity disables it.
type QuotaConfig struct {
	Capacity uint          `koanf:"capacity"`
	Window   time.Duration `koanf:"window"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            "localhost:50051",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Screen: ScreenConfig{
			DefaultPolicy: "allow",
			Quota: QuotaConfig{
				Capacity: 0,
				Window:   time.Minute,
			},
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Screen.DefaultPolicy {
	case "allow", "deny":
	default:
		return fmt.Errorf("invalid screen.default_policy %q: want \"allow\" or \"deny\"", c.Screen.DefaultPolicy)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
