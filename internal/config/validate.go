// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/smcctl/internal/smc"
	"github.com/tamzrod/smcctl/internal/status"
)

// MaxDevices is the number of controllers one session drives.
const MaxDevices = 2

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// DEVICES
	// ------------------------------------------------------------

	if len(cfg.Devices) == 0 {
		return fmt.Errorf("devices: at least one device path required")
	}
	if len(cfg.Devices) > MaxDevices {
		return fmt.Errorf("devices: %d configured, at most %d supported", len(cfg.Devices), MaxDevices)
	}

	seen := make(map[string]int)
	for i, d := range cfg.Devices {
		if d == "" {
			return fmt.Errorf("devices[%d]: empty path", i)
		}
		if prev, ok := seen[d]; ok {
			return fmt.Errorf("devices[%d]: %q already used by devices[%d]", i, d, prev)
		}
		seen[d] = i
	}

	// ------------------------------------------------------------
	// TRANSPORT
	// ------------------------------------------------------------

	switch cfg.Transport.Driver {
	case "tty", "serial":
	default:
		return fmt.Errorf("transport: unknown driver %q (want tty or serial)", cfg.Transport.Driver)
	}
	if cfg.Transport.BaudRate < 0 {
		return fmt.Errorf("transport: baud_rate must be >= 0")
	}
	if cfg.Transport.ReadTimeoutMs < 0 {
		return fmt.Errorf("transport: read_timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// DRIVE
	// ------------------------------------------------------------

	if b := cfg.Drive.BrakeOnExit; b != nil {
		if cfg.Drive.StopOnExit {
			return fmt.Errorf("drive: stop_on_exit and brake_on_exit are mutually exclusive")
		}
		if *b > smc.MaxBrake {
			return fmt.Errorf("drive: brake_on_exit=%d exceeds %d", *b, smc.MaxBrake)
		}
	}

	// ------------------------------------------------------------
	// WATCH
	// ------------------------------------------------------------

	if cfg.Watch.IntervalMs <= 0 {
		return fmt.Errorf("watch: interval_ms must be > 0")
	}

	// ------------------------------------------------------------
	// MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if m := cfg.Mirror; m != nil {
		if m.Endpoint == "" {
			return fmt.Errorf("mirror: endpoint required")
		}
		if m.TimeoutMs <= 0 {
			return fmt.Errorf("mirror: timeout_ms must be > 0")
		}

		// every controller block must fit in the 16-bit address space
		end := int(m.BaseAddress) + len(cfg.Devices)*status.SlotsPerController - 1
		if end > 0xFFFF {
			return fmt.Errorf(
				"mirror: base_address=%d with %d controllers overflows register space (end=%d)",
				m.BaseAddress,
				len(cfg.Devices),
				end,
			)
		}
	}

	return nil
}
