// internal/smc/telemetry.go
package smc

// Derived quantities built from raw readings. No IO beyond the reads themselves.

// ComposeUptime joins the two uptime halves into milliseconds.
// ok is false if either half failed.
func ComposeUptime(lo, hi Reading) (ms uint32, ok bool) {
	if !lo.Valid || !hi.Valid {
		return 0, false
	}
	return uint32(lo.Value&0xFFFF) | uint32(hi.Value&0xFFFF)<<16, true
}

// PoweredOnTime reads both uptime halves and composes them.
// A failed half yields 0; the caller cannot tell that from zero uptime.
func PoweredOnTime(c *Controller) uint32 {
	lo := ReadingOf(c.GetVariable(VarUptimeLo))
	hi := ReadingOf(c.GetVariable(VarUptimeHi))
	ms, _ := ComposeUptime(lo, hi)
	return ms
}

// VoltageVolts scales a battery voltage reading (mV) to volts.
// The sentinel is not filtered; check the Reading first.
func VoltageVolts(raw int) float64 {
	return float64(raw) / 1000.0
}

// TemperatureCelsius scales a temperature reading (0.1 °C) to degrees.
func TemperatureCelsius(raw int) float64 {
	return float64(raw) / 10.0
}

// SplitUptime breaks milliseconds into whole minutes and the remaining seconds.
func SplitUptime(ms uint32) (minutes, seconds uint32) {
	minutes = ms / 60000
	seconds = ms/1000 - minutes*60
	return minutes, seconds
}
