// internal/status/snapshot.go
package status

import "github.com/tamzrod/smcctl/internal/smc"

// Snapshot is one controller's telemetry from a single poll cycle.
// It contains no logic and no memory of the past.
type Snapshot struct {
	Index   int
	Device  string
	Present bool

	ErrorStatus    smc.Reading
	RequestedSpeed smc.Reading
	CurrentSpeed   smc.Reading
	BrakeAmount    smc.Reading
	BatteryVoltage smc.Reading
	Temperature    smc.Reading

	// UptimeMs is 0 when either half failed; UptimeValid tells the two apart.
	UptimeMs    uint32
	UptimeValid bool
}

// Health classifies the snapshot.
func (s Snapshot) Health() uint16 {
	if !s.Present {
		return HealthAbsent
	}
	for _, r := range s.readings() {
		if !r.Valid {
			return HealthError
		}
	}
	if !s.UptimeValid {
		return HealthError
	}
	return HealthOK
}

func (s Snapshot) readings() []smc.Reading {
	return []smc.Reading{
		s.ErrorStatus,
		s.RequestedSpeed,
		s.CurrentSpeed,
		s.BrakeAmount,
		s.BatteryVoltage,
		s.Temperature,
	}
}
