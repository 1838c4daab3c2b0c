// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Tidle register granularity and range (PCT2075). A zero register value makes
// the device fall back to its 100ms default, so the encodable range starts at
// one step.
const (
	idleTimeStep = 100 * time.Millisecond
	minIdleTime  = idleTimeStep
	maxIdleTime  = 31 * idleTimeStep
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr overrides the variant's default I²C address. Most parts respond at
	// 0x48 with all address pins low; the P3T1755 defaults to 0x4C.
	Addr uint16
}

// Dev is a handle to one sensor of the family.
//
// A Dev assumes single ownership of the device: its mutex makes the
// read-modify-write pairs in configuration updates atomic with respect to
// sibling calls, but not with respect to other masters on the bus.
type Dev struct {
	d       *i2c.Dev
	v       variant
	variant Variant

	mu   sync.Mutex
	stop chan struct{}
}

// New returns a handle to a device of the given variant on the bus. opts may
// be nil to use the variant's default address.
//
// No bus transaction is issued: all operations are lazy and the device is
// first touched when one of them is called. Use Ping to probe for presence.
func New(b i2c.Bus, v Variant, opts *Opts) (*Dev, error) {
	desc, ok := variants[v]
	if !ok {
		return nil, &UnknownVariantError{Variant: v}
	}
	addr := desc.defaultAddr
	if opts != nil && opts.Addr != 0 {
		addr = opts.Addr
	}
	if addr < 0x08 || addr > 0x77 {
		return nil, fmt.Errorf("lm75x: invalid I²C address %#02x", addr)
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, v: desc, variant: v}, nil
}

// Temperature reads the temperature register and returns its decoded value.
func (d *Dev) Temperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.temperature()
}

// Read returns the current temperature. It is an alias of Temperature kept
// for callers expecting a generic read verb.
func (d *Dev) Read() (physic.Temperature, error) {
	return d.Temperature()
}

// SetThresholds programs the overtemperature threshold and hysteresis
// registers (Tos/Thyst, named T_HIGH/T_LOW on newer parts). The higher of the
// two values becomes the threshold and the lower the hysteresis, regardless
// of argument order. Values beyond the variant's representable range
// saturate.
func (d *Dev) SetThresholds(v0, v1 physic.Temperature) error {
	low, high := v0, v1
	if low > high {
		low, high = high, low
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeReg16(d.v.regHigh, d.v.encodeTemp(high)); err != nil {
		return err
	}
	return d.writeReg16(d.v.regLow, d.v.encodeTemp(low))
}

// Thresholds reads back the current hysteresis and threshold registers.
func (d *Dev) Thresholds() (low, high physic.Temperature, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rawLow, err := d.readReg16(d.v.regLow)
	if err != nil {
		return 0, 0, err
	}
	rawHigh, err := d.readReg16(d.v.regHigh)
	if err != nil {
		return 0, 0, err
	}
	return d.v.decodeTemp(rawLow), d.v.decodeTemp(rawHigh), nil
}

// Configuration reads the Conf register and returns the decoded snapshot.
// Nothing is cached; every call is a fresh register read.
func (d *Dev) Configuration() (Config, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readReg8(regConf)
	if err != nil {
		return Config{}, err
	}
	return decodeConfig(raw, d.v.caps), nil
}

// SetConfiguration writes all writable Conf fields at once. Reserved bits are
// preserved through a read-modify-write.
func (d *Dev) SetConfiguration(c Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readReg8(regConf)
	if err != nil {
		return err
	}
	return d.writeReg8(regConf, c.merge(raw))
}

// SetOSMode switches the OS pin between comparator and interrupt behavior.
// All other configuration fields are left untouched.
func (d *Dev) SetOSMode(m OSMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyConfig(func(c *Config) { c.Mode = m })
}

// SetOSPolarity sets the active level of the OS pin.
func (d *Dev) SetOSPolarity(p OSPolarity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyConfig(func(c *Config) { c.Polarity = p })
}

// SetFaultQueue sets how many consecutive out-of-threshold conversions are
// required before OS asserts.
func (d *Dev) SetFaultQueue(q FaultQueue) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyConfig(func(c *Config) { c.FaultQueue = q })
}

// SetShutdown stops or restarts conversions. Registers remain accessible
// while shut down; the temperature register holds its last value.
func (d *Dev) SetShutdown(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.modifyConfig(func(c *Config) { c.Shutdown = on })
}

// ClearAlert clears a latched ALERT on variants supporting it (P3T1085) and
// reports whether the fault latch was set. On the device, the read of Conf
// itself releases the latch. Variants without the capability get an
// UnsupportedFeatureError before any bus I/O.
func (d *Dev) ClearAlert() (bool, error) {
	if !d.v.has(capClearAlert) {
		return false, &UnsupportedFeatureError{Variant: d.variant, Feature: "ALERT clearing"}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readReg8(regConf)
	if err != nil {
		return false, err
	}
	return raw&confFaultLatch != 0, nil
}

// SetIdleTime programs the conversion period on variants with a Tidle
// register (PCT2075). The period is rounded to the register's 100ms
// granularity; values outside [100ms, 3.1s] are rejected with
// InvalidIdleTimeError.
func (d *Dev) SetIdleTime(t time.Duration) error {
	if !d.v.has(capIdleTime) {
		return &UnsupportedFeatureError{Variant: d.variant, Feature: "idle time"}
	}
	if t < minIdleTime || t > maxIdleTime {
		return &InvalidIdleTimeError{Value: t}
	}
	steps := byte((t + idleTimeStep/2) / idleTimeStep)
	if steps > 31 {
		steps = 31
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeReg8(regTidle, steps)
}

// IdleTime reads back the programmed conversion period.
func (d *Dev) IdleTime() (time.Duration, error) {
	if !d.v.has(capIdleTime) {
		return 0, &UnsupportedFeatureError{Variant: d.variant, Feature: "idle time"}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	steps, err := d.readReg8(regTidle)
	if err != nil {
		return 0, err
	}
	steps &= 0x1f
	if steps == 0 {
		// Device default when the register is cleared.
		steps = 1
	}
	return time.Duration(steps) * idleTimeStep, nil
}

// Ping verifies the device answers at its address by reading one register.
func (d *Dev) Ping() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.readReg8(regConf)
	return err
}

// Sense reads the temperature from the device and writes it to env.
// Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.temperature()
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous reads from the device at the given interval and writes the
// values to the returned channel. To terminate the continuous read, call
// Halt. Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, fmt.Errorf("lm75x: already sensing continuously")
	}
	if interval < idleTimeStep {
		// One conversion takes up to 100ms on these parts.
		return nil, fmt.Errorf("lm75x: invalid interval, minimum %s", idleTimeStep)
	}
	stop := make(chan struct{})
	d.stop = stop
	channel := make(chan physic.Env, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				close(channel)
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err == nil {
					select {
					case channel <- e:
					default:
					}
				}
			}
		}
	}()
	return channel, nil
}

// Precision sets the sensor's temperature step in env. Implements
// physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = d.v.resolution
}

// Halt stops any continuous read and puts the device into shutdown.
// Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	return d.modifyConfig(func(c *Config) { c.Shutdown = true })
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s: %s", string(d.variant), d.d.String())
}

func (d *Dev) temperature() (physic.Temperature, error) {
	raw, err := d.readReg16(regTemp)
	if err != nil {
		return 0, err
	}
	return d.v.decodeTemp(raw), nil
}

// modifyConfig performs a read-modify-write on Conf. The read happens
// immediately before the write so changes made to the device by someone else
// on the same bus are not clobbered. Callers must hold d.mu.
func (d *Dev) modifyConfig(fn func(*Config)) error {
	raw, err := d.readReg8(regConf)
	if err != nil {
		return err
	}
	c := decodeConfig(raw, d.v.caps)
	fn(&c)
	return d.writeReg8(regConf, c.merge(raw))
}

func (d *Dev) readReg8(reg byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return r[0], nil
}

func (d *Dev) writeReg8(reg, val byte) error {
	return d.d.Tx([]byte{reg, val}, nil)
}

func (d *Dev) readReg16(reg byte) (uint16, error) {
	r := make([]byte, 2)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(r), nil
}

func (d *Dev) writeReg16(reg byte, val uint16) error {
	return d.d.Tx([]byte{reg, byte(val >> 8), byte(val)}, nil)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
