// internal/smc/errors.go
package smc

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent is returned by every operation on a controller that failed to open.
	ErrAbsent = errors.New("smc: controller absent")

	// ErrShortWrite means the transport accepted fewer bytes than the command length.
	ErrShortWrite = errors.New("smc: short write")

	// ErrShortRead means fewer bytes than the fixed response size arrived.
	ErrShortRead = errors.New("smc: short read")
)

// OpError records a failed controller operation and the device it ran against.
type OpError struct {
	Op     string
	Device string
	Err    error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("smc %s %s: %v", e.Device, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
