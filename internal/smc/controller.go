// internal/smc/controller.go
package smc

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Opener acquires a raw-mode byte channel on a device path.
type Opener func(path string) (io.ReadWriteCloser, error)

// Controller is a handle to one SMC on its own transport.
//
// A nil *Controller is the absent handle: every operation reports ErrAbsent
// without touching any transport, and Close is a no-op.
//
// Calls are synchronous request/response with no internal locking;
// callers serialize access to one handle.
type Controller struct {
	device string
	tr     io.ReadWriteCloser
}

// Open acquires a transport on path. On failure it returns a nil handle and the error.
func Open(path string, open Opener) (*Controller, error) {
	tr, err := open(path)
	if err != nil {
		log.Warn().Err(err).Str("device", path).Msg("controller open failed")
		return nil, &OpError{Op: "open", Device: path, Err: err}
	}
	if tr == nil {
		return nil, &OpError{Op: "open", Device: path, Err: ErrAbsent}
	}
	log.Debug().Str("device", path).Msg("controller opened")
	return &Controller{device: path, tr: tr}, nil
}

// New wraps an already open transport.
func New(device string, tr io.ReadWriteCloser) *Controller {
	return &Controller{device: device, tr: tr}
}

// Device returns the device path the handle was opened on.
func (c *Controller) Device() string {
	if c == nil {
		return ""
	}
	return c.device
}

// Close releases the transport exactly once. Safe on a nil or closed handle.
func (c *Controller) Close() error {
	if c == nil || c.tr == nil {
		return nil
	}
	tr := c.tr
	c.tr = nil
	if err := tr.Close(); err != nil {
		return &OpError{Op: "close", Device: c.device, Err: err}
	}
	log.Debug().Str("device", c.device).Msg("controller closed")
	return nil
}

// ---- commands (fire-and-forget) ----

// ExitSafeStart releases the safe-start interlock.
func (c *Controller) ExitSafeStart() error {
	return c.send("exit-safe-start", EncodeExitSafeStart())
}

// SetSpeed commands a signed speed; see EncodeSetSpeed for range behavior.
func (c *Controller) SetSpeed(speed int) error {
	return c.send("set-speed", EncodeSetSpeed(speed))
}

// Brake applies the given brake amount (0..MaxBrake).
func (c *Controller) Brake(amount uint8) error {
	return c.send("brake", EncodeBrake(amount))
}

// Stop halts the motor; the controller re-enters safe start.
func (c *Controller) Stop() error {
	return c.send("stop", EncodeStop())
}

// ---- variables ----

// GetVariable reads one 16-bit register.
// Blocks until exactly two reply bytes arrive or the transport fails.
func (c *Controller) GetVariable(id Variable) (uint16, error) {
	if err := c.send("get-variable", EncodeGetVariable(id)); err != nil {
		return 0, err
	}

	var resp [variableResponseSize]byte
	n, err := io.ReadFull(c.tr, resp[:])
	if err != nil {
		if n > 0 || err == io.EOF {
			err = ErrShortRead
		}
		log.Debug().Err(err).Str("device", c.device).Uint8("var", uint8(id)).Int("n", n).Msg("read failed")
		return 0, &OpError{Op: "get-variable", Device: c.device, Err: err}
	}

	return DecodeVariable(resp), nil
}

// RequestedSpeed reads the last commanded speed magnitude.
func (c *Controller) RequestedSpeed() (uint16, error) { return c.GetVariable(VarRequestedSpeed) }

// CurrentSpeed reads the speed the motor is actually at, which lags while accelerating.
func (c *Controller) CurrentSpeed() (uint16, error) { return c.GetVariable(VarCurrentSpeed) }

// BrakeAmount reads the applied brake (0..MaxBrake).
func (c *Controller) BrakeAmount() (uint16, error) { return c.GetVariable(VarBrakeAmount) }

// BatteryVoltage reads the supply voltage in millivolts. See VoltageVolts.
func (c *Controller) BatteryVoltage() (uint16, error) { return c.GetVariable(VarBatteryVoltage) }

// Temperature reads the board temperature in tenths of a degree Celsius. See TemperatureCelsius.
func (c *Controller) Temperature() (uint16, error) { return c.GetVariable(VarTemperature) }

// ErrorStatus reads the error bitmask; zero means no error is latched.
func (c *Controller) ErrorStatus() (uint16, error) { return c.GetVariable(VarErrorStatus) }

// send writes one complete command. Any shortfall is an error; nothing is retried.
func (c *Controller) send(op string, cmd []byte) error {
	if c == nil || c.tr == nil {
		return ErrAbsent
	}

	n, err := c.tr.Write(cmd)
	if err == nil && n < len(cmd) {
		err = ErrShortWrite
	}
	if err != nil {
		log.Debug().Err(err).Str("device", c.device).Str("op", op).Int("n", n).Msg("write failed")
		return &OpError{Op: op, Device: c.device, Err: err}
	}
	return nil
}
