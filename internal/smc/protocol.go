// internal/smc/protocol.go
package smc

// Wire format of the SMC serial command protocol.
// These values are fixed by the controller firmware and MUST NOT be configurable.
// No checksums, no framing, multi-byte fields little-endian.

// ---- OPCODES ----

const (
	CmdExitSafeStart byte = 0x83
	CmdForward       byte = 0x85
	CmdReverse       byte = 0x86
	CmdBrake         byte = 0x92
	CmdGetVariable   byte = 0xA1
	CmdStop          byte = 0xE0
)

// ---- VARIABLES ----

// Variable names one 16-bit controller register.
type Variable byte

const (
	VarErrorStatus    Variable = 0
	VarRequestedSpeed Variable = 20
	VarCurrentSpeed   Variable = 21
	VarBrakeAmount    Variable = 22
	VarBatteryVoltage Variable = 23 // mV
	VarTemperature    Variable = 24 // 0.1 °C
	VarUptimeLo       Variable = 28
	VarUptimeHi       Variable = 29
)

// ---- LIMITS ----

// MaxSpeed is the largest magnitude the 12-bit speed payload can carry.
const MaxSpeed = 4095

// MaxBrake is the largest brake amount accepted by the controller.
const MaxBrake = 32

// variableResponseSize is the fixed size of a Get Variable reply.
const variableResponseSize = 2

// ---- ENCODE ----

// EncodeExitSafeStart builds the single-byte Exit Safe Start command.
func EncodeExitSafeStart() []byte {
	return []byte{CmdExitSafeStart}
}

// EncodeGetVariable builds the Get Variable command.
// Unknown ids are passed through; the set above is the one this package reads.
func EncodeGetVariable(id Variable) []byte {
	return []byte{CmdGetVariable, byte(id)}
}

// EncodeSetSpeed builds a Set Speed command.
// Sign selects direction, the magnitude is split low5/high7.
// Magnitudes above MaxSpeed wrap: bits above bit 11 are dropped.
func EncodeSetSpeed(speed int) []byte {
	op := CmdForward
	mag := speed
	if speed < 0 {
		op = CmdReverse
		mag = -speed
	}
	return []byte{op, byte(mag & 0x1F), byte((mag >> 5) & 0x7F)}
}

// EncodeBrake builds a Motor Brake command. Amounts above MaxBrake are clamped.
func EncodeBrake(amount uint8) []byte {
	if amount > MaxBrake {
		amount = MaxBrake
	}
	return []byte{CmdBrake, amount}
}

// EncodeStop builds the Stop Motor command.
func EncodeStop() []byte {
	return []byte{CmdStop}
}

// ---- DECODE ----

// DecodeVariable interprets a Get Variable reply (little-endian).
func DecodeVariable(b [2]byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
