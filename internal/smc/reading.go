// internal/smc/reading.go
package smc

// Sentinel is the legacy out-of-range value reported for a failed read.
// It lies outside 0..65535 and can never be a real register value.
const Sentinel = -9999

// Reading is the outcome of one variable read.
// Value is meaningful only when Valid is true.
type Reading struct {
	Value uint16
	Valid bool
}

// ReadingOf folds a (value, error) pair into a Reading.
func ReadingOf(v uint16, err error) Reading {
	if err != nil {
		return Reading{}
	}
	return Reading{Value: v, Valid: true}
}

// Raw returns the register value, or Sentinel when the read failed.
func (r Reading) Raw() int {
	if !r.Valid {
		return Sentinel
	}
	return int(r.Value)
}
