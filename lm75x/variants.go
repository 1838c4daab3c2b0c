// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

import (
	"periph.io/x/conn/v3/physic"
)

// Variant is the type denoting a specific device of the family.
type Variant string

const (
	LM75B   Variant = "LM75B"   // LM75B   9-bit thermal watchdog. Datasheet: https://www.nxp.com/docs/en/data-sheet/LM75B.pdf
	PCT2075 Variant = "PCT2075" // PCT2075 9-bit, programmable idle time. Datasheet: https://www.nxp.com/docs/en/data-sheet/PCT2075.pdf
	P3T1755 Variant = "P3T1755" // P3T1755 11-bit. Datasheet: https://www.nxp.com/docs/en/data-sheet/P3T1755DP.pdf
	P3T1085 Variant = "P3T1085" // P3T1085 13-bit, ALERT clearing. Datasheet: https://www.nxp.com/docs/en/data-sheet/P3T1085UK.pdf
)

// Pointer-register addresses. The first four are a shared backbone across the
// whole family; only the datasheet names of 0x02/0x03 differ per generation.
const (
	regTemp  byte = 0x00
	regConf  byte = 0x01
	regLow   byte = 0x02 // Thyst on LM75B/PCT2075, T_LOW on P3T1755/P3T1085
	regHigh  byte = 0x03 // Tos on LM75B/PCT2075, T_HIGH on P3T1755/P3T1085
	regTidle byte = 0x04 // PCT2075 only
)

// Temperature resolution (one LSB of the temperature registers) per device
// generation, from the respective datasheets.
const (
	resolution9Bit  physic.Temperature = 500 * physic.MilliKelvin
	resolution11Bit physic.Temperature = 125 * physic.MilliKelvin
	resolution13Bit physic.Temperature = 31250 * physic.MicroKelvin
)

type capability uint8

const (
	capIdleTime capability = 1 << iota
	capClearAlert
)

// variant describes one device of the family: the fixed-point temperature
// format, its register map and the optional features it supports.
type variant struct {
	tempBits    uint
	resolution  physic.Temperature
	regLow      byte
	regHigh     byte
	lowName     string
	highName    string
	defaultAddr uint16
	caps        capability
}

var variants = map[Variant]variant{
	LM75B:   {tempBits: 9, resolution: resolution9Bit, regLow: regLow, regHigh: regHigh, lowName: "Thyst", highName: "Tos", defaultAddr: 0x48},
	PCT2075: {tempBits: 9, resolution: resolution9Bit, regLow: regLow, regHigh: regHigh, lowName: "Thyst", highName: "Tos", defaultAddr: 0x48, caps: capIdleTime},
	P3T1755: {tempBits: 11, resolution: resolution11Bit, regLow: regLow, regHigh: regHigh, lowName: "T_LOW", highName: "T_HIGH", defaultAddr: 0x4C},
	P3T1085: {tempBits: 13, resolution: resolution13Bit, regLow: regLow, regHigh: regHigh, lowName: "T_LOW", highName: "T_HIGH", defaultAddr: 0x48, caps: capClearAlert},
}

func (v variant) has(c capability) bool {
	return v.caps&c != 0
}

// minTemp returns the lowest temperature the variant's register format can
// hold. Encoding anything below it saturates to this value.
func (v variant) minTemp() physic.Temperature {
	counts := int64(-1) << (v.tempBits - 1)
	return physic.ZeroCelsius + physic.Temperature(counts)*v.resolution
}

// maxTemp returns the highest temperature the variant's register format can
// hold. Encoding anything above it saturates to this value.
func (v variant) maxTemp() physic.Temperature {
	counts := int64(1)<<(v.tempBits-1) - 1
	return physic.ZeroCelsius + physic.Temperature(counts)*v.resolution
}
