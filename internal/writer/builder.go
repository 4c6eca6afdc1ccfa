// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/smcctl/internal/config"
	wmodbus "github.com/tamzrod/smcctl/internal/writer/modbus"
)

// BuildPlan converts the mirror config into a Writer Plan.
// Assumes config has already passed validation.
func BuildPlan(m *cfg.MirrorConfig) (Plan, error) {
	if m == nil || m.Endpoint == "" {
		return Plan{}, errors.New("writer: mirror endpoint required")
	}

	return Plan{
		Endpoint:    m.Endpoint,
		UnitID:      m.UnitID,
		BaseAddress: m.BaseAddress,
	}, nil
}

// Build connects the endpoint client and returns the writer with its closer.
func Build(m *cfg.MirrorConfig) (Writer, func() error, error) {
	plan, err := BuildPlan(m)
	if err != nil {
		return nil, nil, err
	}

	c, err := wmodbus.Dial(wmodbus.Config{
		Endpoint:    plan.Endpoint,
		UnitID:      plan.UnitID,
		BaseAddress: plan.BaseAddress,
		Timeout:     time.Duration(m.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	return New(plan, c), c.Close, nil
}
