// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lm75x controls the NXP LM75-derived family of I²C digital
// temperature sensors.
//
// The following variants are supported:
//
//   - LM75B - 9-bit (0.5°C), thermal watchdog with Tos/Thyst thresholds
//   - PCT2075 - 9-bit (0.5°C), adds a programmable idle time between conversions
//   - P3T1755 - 11-bit (0.125°C), T_HIGH/T_LOW thresholds
//   - P3T1085 - 13-bit (0.03125°C), adds ALERT clearing
//
// All variants share the same register backbone (temperature, configuration
// and a threshold pair) and the same configuration bit layout; the variants
// differ in temperature resolution and the two optional features above.
// Feature-gated operations return UnsupportedFeatureError on variants lacking
// the feature, without touching the bus.
//
// The lm75x.Dev type implements the physic.SenseEnv interface. Constructing a
// Dev performs no I/O; all operations are issued lazily when called.
package lm75x
