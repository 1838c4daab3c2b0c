// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

// Conf register bit layout. The positions are identical across the whole
// family; later generations only add the fault latch on top.
const (
	confShutdown   byte = 1 << 0
	confOSMode     byte = 1 << 1
	confOSPolarity byte = 1 << 2
	confFaultQueue byte = 0x18      // bits 3-4
	confFaultLatch byte = 1 << 5    // alert-clear variants, cleared by reading Conf

	confFaultQueueShift = 3

	// Bits the driver writes. The reserved bits 6-7 and the read-only fault
	// latch are carried over unchanged on every read-modify-write.
	confWriteMask = confShutdown | confOSMode | confOSPolarity | confFaultQueue
)

// OSMode selects how the OS output pin behaves when the temperature crosses
// the programmed thresholds.
type OSMode byte

const (
	// Comparator makes OS follow the temperature like a thermostat: asserted
	// above Tos/T_HIGH, released below Thyst/T_LOW.
	Comparator OSMode = 0
	// Interrupt latches OS on a threshold crossing until it is cleared by a
	// register read.
	Interrupt OSMode = 1
)

func (m OSMode) String() string {
	if m == Interrupt {
		return "interrupt"
	}
	return "comparator"
}

// OSPolarity selects the active level of the OS output pin.
type OSPolarity byte

const (
	ActiveLow  OSPolarity = 0
	ActiveHigh OSPolarity = 1
)

func (p OSPolarity) String() string {
	if p == ActiveHigh {
		return "active-high"
	}
	return "active-low"
}

// FaultQueue is the number of consecutive out-of-threshold conversions
// required before OS asserts.
type FaultQueue byte

const (
	Fault1 FaultQueue = iota
	Fault2
	Fault4
	Fault6
)

// Consecutive returns the number of consecutive faults the setting stands for.
func (q FaultQueue) Consecutive() int {
	switch q {
	case Fault2:
		return 2
	case Fault4:
		return 4
	case Fault6:
		return 6
	default:
		return 1
	}
}

// Config is a decoded snapshot of the Conf register taken at one instant. It
// is never cached by the driver; accessors re-read the device.
type Config struct {
	// Shutdown stops conversions; the registers stay readable.
	Shutdown bool
	Mode     OSMode
	Polarity OSPolarity
	// FaultQueue debounces the OS output.
	FaultQueue FaultQueue
	// AlertPending reports the fault latch on variants supporting ClearAlert.
	// Always false elsewhere.
	AlertPending bool
}

func decodeConfig(raw byte, caps capability) Config {
	c := Config{
		Shutdown:   raw&confShutdown != 0,
		Mode:       OSMode(raw >> 1 & 1),
		Polarity:   OSPolarity(raw >> 2 & 1),
		FaultQueue: FaultQueue(raw & confFaultQueue >> confFaultQueueShift),
	}
	if caps&capClearAlert != 0 {
		c.AlertPending = raw&confFaultLatch != 0
	}
	return c
}

// merge folds the snapshot into the register byte read immediately before the
// write, so reserved bits and the fault latch are never perturbed.
func (c Config) merge(current byte) byte {
	b := current &^ confWriteMask
	if c.Shutdown {
		b |= confShutdown
	}
	b |= byte(c.Mode&1) << 1
	b |= byte(c.Polarity&1) << 2
	b |= byte(c.FaultQueue) << confFaultQueueShift & confFaultQueue
	return b
}
