// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// The temperature, Thyst/T_LOW and Tos/T_HIGH registers all use the same
// fixed-point format: a two's complement value of tempBits significant bits,
// left-justified in the 16-bit register. The unused low bits read as zero and
// are written as zero.

// EncodeTemperature converts a temperature in degrees Celsius into the raw
// register value for the given variant. The value is rounded to the nearest
// representable step, ties away from zero. Finite values outside the
// representable range saturate to the minimum or maximum raw value; NaN and
// infinities are rejected with InvalidTemperatureError before anything else.
func EncodeTemperature(celsius float64, v Variant) (uint16, error) {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return 0, &InvalidTemperatureError{Value: celsius}
	}
	desc, ok := variants[v]
	if !ok {
		return 0, &UnknownVariantError{Variant: v}
	}
	step := float64(desc.resolution) / float64(physic.Kelvin)
	counts := math.Round(celsius / step)
	// Saturate in float space: converting a quotient beyond int64 range is
	// implementation-defined and would flip the sign of the saturation.
	max := float64(int64(1)<<(desc.tempBits-1) - 1)
	min := float64(int64(-1) << (desc.tempBits - 1))
	if counts > max {
		counts = max
	}
	if counts < min {
		counts = min
	}
	return encodeCounts(int64(counts), desc.tempBits), nil
}

// DecodeTemperature converts a raw register value of the given variant back
// into degrees Celsius. It is the exact inverse of EncodeTemperature for all
// in-range multiples of the variant's step.
func DecodeTemperature(raw uint16, v Variant) (float64, error) {
	desc, ok := variants[v]
	if !ok {
		return 0, &UnknownVariantError{Variant: v}
	}
	step := float64(desc.resolution) / float64(physic.Kelvin)
	return float64(decodeCounts(raw, desc.tempBits)) * step, nil
}

// encodeCounts left-justifies a signed LSB count into 16 bits, saturating to
// the range of bits significant bits.
func encodeCounts(counts int64, bits uint) uint16 {
	max := int64(1)<<(bits-1) - 1
	min := int64(-1) << (bits - 1)
	if counts > max {
		counts = max
	}
	if counts < min {
		counts = min
	}
	return uint16(counts << (16 - bits))
}

// decodeCounts extracts the top bits of a raw register value and sign-extends
// them; the padding bits below are discarded.
func decodeCounts(raw uint16, bits uint) int64 {
	return int64(int16(raw) >> (16 - bits))
}

// encodeTemp is the physic-typed twin of EncodeTemperature used on the bus
// path. physic.Temperature values are always finite, so no error is possible;
// rounding and saturation behave identically.
func (v variant) encodeTemp(t physic.Temperature) uint16 {
	delta := int64(t - physic.ZeroCelsius)
	res := int64(v.resolution)
	var counts int64
	if delta >= 0 {
		counts = (delta + res/2) / res
	} else {
		counts = (delta - res/2) / res
	}
	return encodeCounts(counts, v.tempBits)
}

func (v variant) decodeTemp(raw uint16) physic.Temperature {
	counts := decodeCounts(raw, v.tempBits)
	return physic.ZeroCelsius + physic.Temperature(counts)*v.resolution
}
