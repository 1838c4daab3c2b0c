// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

import (
	"fmt"
	"time"
)

// InvalidTemperatureError is returned when a non-finite Celsius value is
// passed to the codec. It is raised before any bus I/O.
type InvalidTemperatureError struct {
	Value float64
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("lm75x: temperature value %v is not finite", e.Value)
}

// UnknownVariantError is returned when a Variant is not one of the supported
// devices.
type UnknownVariantError struct {
	Variant Variant
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("lm75x: unsupported variant %q", string(e.Variant))
}

// UnsupportedFeatureError is returned when a capability-gated operation is
// invoked on a variant lacking that capability. No bus I/O is attempted.
type UnsupportedFeatureError struct {
	Variant Variant
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("lm75x: %s does not support %s", string(e.Variant), e.Feature)
}

// InvalidIdleTimeError is returned when an idle time outside the Tidle
// register range is requested.
type InvalidIdleTimeError struct {
	Value time.Duration
}

func (e *InvalidIdleTimeError) Error() string {
	return fmt.Sprintf("lm75x: idle time %s out of range [%s, %s]", e.Value, minIdleTime, maxIdleTime)
}
