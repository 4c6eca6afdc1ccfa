// internal/transport/serial.go
package transport

import (
	"fmt"
	"io"

	"github.com/goburrow/serial"
)

const defaultBaudRate = 9600

// openSerial opens path as a serial line: 8 data bits, no parity, one stop bit.
// The termios setup of goburrow/serial leaves local and output flags cleared (raw).
func openSerial(path string, cfg Config) (io.ReadWriteCloser, error) {
	if path == "" {
		return nil, errNoPath
	}

	baud := cfg.BaudRate
	if baud == 0 {
		baud = defaultBaudRate
	}

	p, err := serial.Open(&serial.Config{
		Address:  path,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open serial %s: %w", path, err)
	}

	return p, nil
}
