// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm75x_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/teddokano/tempsensor-go/lm75x"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := lm75x.New(b, lm75x.PCT2075, nil)
	if err != nil {
		log.Fatal(err)
	}

	// Assert OS above 75°C, release below 70°C, after two consecutive faults.
	err = d.SetThresholds(physic.ZeroCelsius+75*physic.Kelvin, physic.ZeroCelsius+70*physic.Kelvin)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.SetOSMode(lm75x.Comparator); err != nil {
		log.Fatal(err)
	}
	if err := d.SetFaultQueue(lm75x.Fault2); err != nil {
		log.Fatal(err)
	}

	e := physic.Env{}
	if err := d.Sense(&e); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%8s\n", e.Temperature)
}

func Example_senseContinuous() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := lm75x.New(b, lm75x.P3T1085, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	// Sample once per second for ten seconds.
	ch, err := d.SenseContinuous(time.Second)
	if err != nil {
		log.Fatal(err)
	}
	stop := time.After(10 * time.Second)
	for {
		select {
		case <-stop:
			return
		case e := <-ch:
			fmt.Printf("%8s\n", e.Temperature)
		}
	}
}
