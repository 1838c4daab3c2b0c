// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tempsensor is a container for drivers and tooling for the NXP
// LM75-derived family of I²C digital temperature sensors.
//
// The driver itself lives in the lm75x package. termgauge and tempchart are
// small visualization helpers for bench work.
package tempsensor
