// internal/session/session.go
package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tamzrod/smcctl/internal/poller"
	"github.com/tamzrod/smcctl/internal/smc"
)

// Session owns the controller handles for one run.
// Slot i holds the handle for device i, or nil if that device failed to open.
type Session struct {
	devices     []string
	controllers []*smc.Controller
}

// Open opens every device path in order. A failed open leaves an absent
// handle in that slot; it never fails the session.
func Open(devices []string, open smc.Opener) *Session {
	s := &Session{
		devices:     append([]string(nil), devices...),
		controllers: make([]*smc.Controller, len(devices)),
	}

	for i, d := range devices {
		c, err := smc.Open(d, open)
		if err != nil {
			continue
		}
		s.controllers[i] = c
	}

	return s
}

// Devices returns the configured device paths in slot order.
func (s *Session) Devices() []string { return s.devices }

// Controller returns the handle in slot i (nil when absent or out of range).
func (s *Session) Controller(i int) *smc.Controller {
	if i < 0 || i >= len(s.controllers) {
		return nil
	}
	return s.controllers[i]
}

// Targets exposes the handles to the poller.
func (s *Session) Targets() []poller.Target {
	out := make([]poller.Target, len(s.devices))
	for i, d := range s.devices {
		out[i] = poller.Target{Device: d}
		if c := s.controllers[i]; c != nil {
			out[i].Reader = c
		}
	}
	return out
}

// ExitSafeStart sends Exit Safe Start to every slot and returns one result per slot.
func (s *Session) ExitSafeStart() []error {
	out := make([]error, len(s.controllers))
	for i, c := range s.controllers {
		out[i] = c.ExitSafeStart()
	}
	return out
}

// Close releases every handle. Safe to call more than once.
func (s *Session) Close() error {
	var errs []error
	for _, c := range s.controllers {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Str("device", c.Device()).Msg("close failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ---- drive ----

// DriveOptions tune drive mode.
type DriveOptions struct {
	ExitSafeStart bool
	StopOnExit    bool
	// BrakeOnExit, when set, brakes every controller after the hold.
	// It takes the place of StopOnExit.
	BrakeOnExit *uint8
}

// DriveResult reports the per-slot outcome of drive mode.
type DriveResult struct {
	SafeStart []error // nil when not requested
	SetSpeed  []error
	Stop      []error // nil when not requested
	Brake     []error // nil when not requested
	Held      time.Duration
}

// Drive commands speeds[i] to slot i, then holds for the given duration.
// Slots without a speed are left alone. A cancelled ctx cuts the hold short.
func (s *Session) Drive(ctx context.Context, speeds []int, hold time.Duration, opts DriveOptions) DriveResult {
	var res DriveResult

	if opts.ExitSafeStart {
		res.SafeStart = s.ExitSafeStart()
	}

	res.SetSpeed = make([]error, len(s.controllers))
	for i, c := range s.controllers {
		if i >= len(speeds) {
			continue
		}
		res.SetSpeed[i] = c.SetSpeed(speeds[i])
	}

	res.Held = wait(ctx, hold)

	switch {
	case opts.BrakeOnExit != nil:
		res.Brake = make([]error, len(s.controllers))
		for i, c := range s.controllers {
			res.Brake[i] = c.Brake(*opts.BrakeOnExit)
		}
	case opts.StopOnExit:
		res.Stop = make([]error, len(s.controllers))
		for i, c := range s.controllers {
			res.Stop[i] = c.Stop()
		}
	}

	return res
}

// wait blocks for d or until ctx is done, returning how long it actually waited.
func wait(ctx context.Context, d time.Duration) time.Duration {
	start := time.Now()
	if d <= 0 {
		return 0
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
		log.Info().Dur("remaining", d-time.Since(start)).Msg("hold interrupted")
	}
	return time.Since(start)
}
