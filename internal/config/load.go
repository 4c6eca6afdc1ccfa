// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file. An empty path yields an empty config
// (Normalize supplies defaults).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// envOverrides are the settings that may come from the environment.
type envOverrides struct {
	Devices        []string `env:"SMC_DEVICES" envSeparator:":"`
	Driver         string   `env:"SMC_TRANSPORT"`
	BaudRate       int      `env:"SMC_BAUD"`
	MirrorEndpoint string   `env:"SMC_MIRROR_ENDPOINT"`
}

// ApplyEnv overlays environment variables onto cfg. Unset variables change nothing.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: env: %w", err)
	}

	if len(o.Devices) > 0 {
		cfg.Devices = o.Devices
	}
	if o.Driver != "" {
		cfg.Transport.Driver = o.Driver
	}
	if o.BaudRate != 0 {
		cfg.Transport.BaudRate = o.BaudRate
	}
	if o.MirrorEndpoint != "" {
		if cfg.Mirror == nil {
			cfg.Mirror = &MirrorConfig{}
		}
		cfg.Mirror.Endpoint = o.MirrorEndpoint
	}

	return nil
}
