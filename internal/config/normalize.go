// internal/config/normalize.go
package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultDriver          = "tty"
	DefaultDiscoveryDir    = "/dev"
	DefaultDiscoveryPrefix = "ttyACM"
	DefaultWatchIntervalMs = 1000
	DefaultMirrorTimeoutMs = 2000
	DefaultMirrorUnitID    = 1
)

// DefaultDevices are the two controller nodes used when none are configured.
var DefaultDevices = []string{"/dev/ttyACM0", "/dev/ttyACM1"}

// Normalize fills defaults. It is allowed to mutate configuration.
// It MUST be called before Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Trim and drop empty device entries; fall back to the default pair.
	devices := cfg.Devices[:0]
	for _, d := range cfg.Devices {
		if d = strings.TrimSpace(d); d != "" {
			devices = append(devices, d)
		}
	}
	cfg.Devices = devices
	if len(cfg.Devices) == 0 {
		cfg.Devices = append([]string(nil), DefaultDevices...)
	}

	if cfg.Transport.Driver == "" {
		cfg.Transport.Driver = DefaultDriver
	}

	if cfg.Discovery.Dir == "" {
		cfg.Discovery.Dir = DefaultDiscoveryDir
	}
	if cfg.Discovery.Prefix == "" {
		cfg.Discovery.Prefix = DefaultDiscoveryPrefix
	}

	if cfg.Watch.IntervalMs == 0 {
		cfg.Watch.IntervalMs = DefaultWatchIntervalMs
	}

	if m := cfg.Mirror; m != nil {
		if m.TimeoutMs == 0 {
			m.TimeoutMs = DefaultMirrorTimeoutMs
		}
		if m.UnitID == 0 {
			m.UnitID = DefaultMirrorUnitID
		}
	}
}
