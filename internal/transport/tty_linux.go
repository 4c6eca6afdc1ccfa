//go:build linux

// internal/transport/tty_linux.go
package transport

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// openTTY opens path read/write without making it the controlling terminal
// and puts the line into raw 8-bit mode. Baud is left as the node already has it.
func openTTY(path string) (io.ReadWriteCloser, error) {
	if path == "" {
		return nil, errNoPath
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", path, err)
	}

	if err := makeRaw(fd); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("transport: raw mode %s: %w", path, err)
	}

	return os.NewFile(uintptr(fd), path), nil
}

func makeRaw(fd int) error {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}

	rawTermios(t)

	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

// rawTermios clears every flag that would alter, drop or pace protocol bytes.
// Reads return as soon as one byte is available.
func rawTermios(t *unix.Termios) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.IXOFF | unix.INPCK
	t.Oflag &^= unix.OPOST | unix.ONLCR | unix.OCRNL
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
}
