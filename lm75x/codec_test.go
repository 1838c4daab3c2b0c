// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		v       Variant
		celsius float64
		raw     uint16
	}{
		{LM75B, 25.0, 0x1900},
		{LM75B, -25.0, 0xe700},
		{LM75B, 0.0, 0x0000},
		{LM75B, 0.5, 0x0080},
		{LM75B, -0.5, 0xff80},
		{LM75B, -55.0, 0xc900},
		{LM75B, 125.0, 0x7d00},
		// The encoding is left-justified, so values representable at 9 bits
		// produce the same raw value at every width.
		{P3T1755, 25.0, 0x1900},
		{P3T1755, 0.125, 0x0020},
		{P3T1755, -0.125, 0xffe0},
		{P3T1085, 25.0, 0x1900},
		{P3T1085, 0.03125, 0x0008},
		{P3T1085, -0.03125, 0xfff8},
	}
	for _, test := range tests {
		raw, err := EncodeTemperature(test.celsius, test.v)
		if err != nil {
			t.Fatalf("%s encode(%v): %v", test.v, test.celsius, err)
		}
		if raw != test.raw {
			t.Errorf("%s encode(%v) = %#04x, expected %#04x", test.v, test.celsius, raw, test.raw)
		}
		celsius, err := DecodeTemperature(test.raw, test.v)
		if err != nil {
			t.Fatalf("%s decode(%#04x): %v", test.v, test.raw, err)
		}
		if celsius != test.celsius {
			t.Errorf("%s decode(%#04x) = %v, expected %v", test.v, test.raw, celsius, test.celsius)
		}
	}
}

// TestRoundTrip checks decode(encode(c)) == c for every representable step of
// every variant.
func TestRoundTrip(t *testing.T) {
	for v, desc := range variants {
		step := float64(desc.resolution) / float64(physic.Kelvin)
		min := int64(-1) << (desc.tempBits - 1)
		max := int64(1)<<(desc.tempBits-1) - 1
		for counts := min; counts <= max; counts++ {
			celsius := float64(counts) * step
			raw, err := EncodeTemperature(celsius, v)
			if err != nil {
				t.Fatalf("%s encode(%v): %v", v, celsius, err)
			}
			got, err := DecodeTemperature(raw, v)
			if err != nil {
				t.Fatalf("%s decode(%#04x): %v", v, raw, err)
			}
			if got != celsius {
				t.Fatalf("%s round trip of %v came back as %v (raw %#04x)", v, celsius, got, raw)
			}
		}
	}
}

func TestEncodeSaturation(t *testing.T) {
	tests := []struct {
		v       Variant
		celsius float64
		raw     uint16
	}{
		{LM75B, 300.0, 0x7f80},    // 127.5, top of the 9-bit range
		{LM75B, -300.0, 0x8000},   // -128.0
		{P3T1755, 1e6, 0x7fe0},    // 127.875
		{P3T1755, -1e6, 0x8000},   // -128.0
		{P3T1085, 129.0, 0x7ff8},  // 127.96875
		{P3T1085, -129.0, 0x8000}, // -128.0
		// Magnitudes whose LSB count exceeds int64 must still saturate with
		// the right sign.
		{LM75B, 1e300, 0x7f80},
		{LM75B, -1e300, 0x8000},
		{P3T1085, math.MaxFloat64, 0x7ff8},
		{P3T1085, -math.MaxFloat64, 0x8000},
	}
	for _, test := range tests {
		raw, err := EncodeTemperature(test.celsius, test.v)
		if err != nil {
			t.Fatalf("%s encode(%v): %v", test.v, test.celsius, err)
		}
		if raw != test.raw {
			t.Errorf("%s encode(%v) = %#04x, expected saturation to %#04x", test.v, test.celsius, raw, test.raw)
		}
	}
}

func TestEncodeRounding(t *testing.T) {
	// Nearest step, ties away from zero.
	tests := []struct {
		celsius float64
		raw     uint16
	}{
		{0.25, 0x0080},  // tie, away from zero -> 0.5
		{-0.25, 0xff80}, // tie, away from zero -> -0.5
		{0.24, 0x0000},
		{-0.24, 0x0000},
		{0.26, 0x0080},
		{25.1, 0x1900},
		{25.3, 0x1980},
	}
	for _, test := range tests {
		raw, err := EncodeTemperature(test.celsius, LM75B)
		if err != nil {
			t.Fatalf("encode(%v): %v", test.celsius, err)
		}
		if raw != test.raw {
			t.Errorf("encode(%v) = %#04x, expected %#04x", test.celsius, raw, test.raw)
		}
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, celsius := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := EncodeTemperature(celsius, LM75B)
		var ite *InvalidTemperatureError
		if !errors.As(err, &ite) {
			t.Errorf("encode(%v) = %v, expected InvalidTemperatureError", celsius, err)
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	var uve *UnknownVariantError
	if _, err := EncodeTemperature(25.0, Variant("TMP102")); !errors.As(err, &uve) {
		t.Errorf("encode on unknown variant = %v, expected UnknownVariantError", err)
	}
	if _, err := DecodeTemperature(0x1900, Variant("TMP102")); !errors.As(err, &uve) {
		t.Errorf("decode on unknown variant = %v, expected UnknownVariantError", err)
	}
}

func TestDecodeIgnoresPadding(t *testing.T) {
	// The low padding bits must not affect the decoded value.
	for _, raw := range []uint16{0x1900, 0x1905, 0x197f} {
		celsius, err := DecodeTemperature(raw, LM75B)
		if err != nil {
			t.Fatal(err)
		}
		if celsius != 25.0 {
			t.Errorf("decode(%#04x) = %v, expected 25.0", raw, celsius)
		}
	}
}

func TestVariantRange(t *testing.T) {
	desc := variants[LM75B]
	if got := desc.minTemp(); got != physic.ZeroCelsius-128*physic.Kelvin {
		t.Errorf("minTemp = %s", got)
	}
	if got := desc.maxTemp(); got != physic.ZeroCelsius+127500*physic.MilliKelvin {
		t.Errorf("maxTemp = %s", got)
	}
}
