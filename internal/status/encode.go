// internal/status/encode.go
package status

import "github.com/tamzrod/smcctl/internal/smc"

// Encode converts a Snapshot into a full controller block.
// Layout is protocol-locked. Invalid readings are written as 0 with their
// valid bit cleared.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerController)

	regs[SlotHealthCode] = s.Health()

	var mask uint16
	put := func(slot int, r smc.Reading) {
		if r.Valid {
			regs[slot] = r.Value
			mask |= 1 << uint(slot)
		}
	}

	put(SlotErrorStatus, s.ErrorStatus)
	put(SlotRequestedSpeed, s.RequestedSpeed)
	put(SlotCurrentSpeed, s.CurrentSpeed)
	put(SlotBrakeAmount, s.BrakeAmount)
	put(SlotBatteryVoltage, s.BatteryVoltage)
	put(SlotTemperature, s.Temperature)

	if s.UptimeValid {
		regs[SlotUptimeLo] = uint16(s.UptimeMs)
		regs[SlotUptimeHi] = uint16(s.UptimeMs >> 16)
		mask |= 1<<SlotUptimeLo | 1<<SlotUptimeHi
	}

	regs[SlotValidMask] = mask

	return regs
}
