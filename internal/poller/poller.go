// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/smcctl/internal/smc"
	"github.com/tamzrod/smcctl/internal/status"
)

// Reader abstracts the one controller operation the poller needs.
type Reader interface {
	GetVariable(id smc.Variable) (uint16, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Targets  []Target
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg Config
	now func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config) (*Poller, error) {
	if len(cfg.Targets) == 0 {
		return nil, errors.New("poller: at least one target required")
	}
	return &Poller{cfg: cfg, now: time.Now}, nil
}

// PollOnce performs exactly one poll cycle, one controller after another.
// A failed read marks that reading invalid and the cycle continues.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{
		At:          p.now(),
		Controllers: make([]status.Snapshot, 0, len(p.cfg.Targets)),
	}

	for i, t := range p.cfg.Targets {
		res.Controllers = append(res.Controllers, pollTarget(i, t))
	}

	return res
}

func pollTarget(i int, t Target) status.Snapshot {
	s := status.Snapshot{Index: i, Device: t.Device}
	if t.Reader == nil {
		return s
	}
	s.Present = true

	read := func(id smc.Variable) smc.Reading {
		return smc.ReadingOf(t.Reader.GetVariable(id))
	}

	s.ErrorStatus = read(smc.VarErrorStatus)
	s.RequestedSpeed = read(smc.VarRequestedSpeed)
	s.CurrentSpeed = read(smc.VarCurrentSpeed)
	s.BrakeAmount = read(smc.VarBrakeAmount)
	s.BatteryVoltage = read(smc.VarBatteryVoltage)
	s.Temperature = read(smc.VarTemperature)

	lo := read(smc.VarUptimeLo)
	hi := read(smc.VarUptimeHi)
	s.UptimeMs, s.UptimeValid = smc.ComposeUptime(lo, hi)

	return s
}
