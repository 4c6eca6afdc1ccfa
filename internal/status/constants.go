// internal/status/constants.go
package status

// Controller telemetry block layout constants.
// These values define the mirror layout and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerController is the fixed number of registers per controller.
const SlotsPerController = 12

// ---- SLOT INDICES ----

// SlotHealthCode holds the controller health state.
const SlotHealthCode = 0

// SlotErrorStatus holds the controller error-status word.
const SlotErrorStatus = 1

// SlotRequestedSpeed holds the raw requested speed register.
const SlotRequestedSpeed = 2

// SlotCurrentSpeed holds the raw current speed register.
const SlotCurrentSpeed = 3

// SlotBrakeAmount holds the raw brake amount register.
const SlotBrakeAmount = 4

// SlotBatteryVoltage holds the battery voltage in mV.
const SlotBatteryVoltage = 5

// SlotTemperature holds the controller temperature in 0.1 °C.
const SlotTemperature = 6

// SlotUptimeLo and SlotUptimeHi hold the powered-on time in ms.
const SlotUptimeLo = 7
const SlotUptimeHi = 8

// SlotValidMask has bit N set when slot N carries a real reading.
const SlotValidMask = 9

// ---- RESERVED RANGE ----

// Slots 10–11 are reserved for future use.
const SlotReservedStart = 10
const SlotReservedEnd = 11

// ---- HEALTH CODES ----

// Code 0 is never written; a zero health slot means the block was not mirrored yet.

// HealthOK means every read in the cycle succeeded.
const HealthOK uint16 = 1

// HealthError means at least one read in the cycle failed.
const HealthError uint16 = 2

// HealthAbsent means the device could not be opened.
const HealthAbsent uint16 = 3
