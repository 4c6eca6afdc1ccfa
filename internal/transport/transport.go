// internal/transport/transport.go
package transport

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Drivers.
const (
	// DriverTTY keeps the line settings of the device node and only switches it to raw mode.
	DriverTTY = "tty"

	// DriverSerial programs a full 8N1 line (baud, framing, timeout) and raw mode.
	DriverSerial = "serial"
)

// Config is the transport construction config shared by every device.
type Config struct {
	Driver      string
	BaudRate    int
	ReadTimeout time.Duration // 0 = block until data arrives
}

// Opener returns a function that opens a raw-mode channel on a device path.
// Raw mode is part of construction; there is no separate call for it.
func Opener(cfg Config) (func(path string) (io.ReadWriteCloser, error), error) {
	switch cfg.Driver {
	case DriverTTY, "":
		return openTTY, nil
	case DriverSerial:
		return func(path string) (io.ReadWriteCloser, error) {
			return openSerial(path, cfg)
		}, nil
	default:
		return nil, fmt.Errorf("transport: unknown driver %q", cfg.Driver)
	}
}

var errNoPath = errors.New("transport: device path required")
