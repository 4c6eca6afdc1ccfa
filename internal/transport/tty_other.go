//go:build !linux

// internal/transport/tty_other.go
package transport

import (
	"errors"
	"io"
)

func openTTY(path string) (io.ReadWriteCloser, error) {
	return nil, errors.New("transport: tty driver is linux-only, use driver \"serial\"")
}
