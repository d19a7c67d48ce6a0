// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ledport

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Pin is a single LED of the port seen as a GPO pin. Its number is the LED
// index, starting at 1.
type Pin struct {
	dev    *Dev
	name   string
	number int
}

// Halt implements conn.Resource.
func (pin *Pin) Halt() error {
	return nil
}

// Name returns the name of the pin.
func (pin *Pin) Name() string {
	return pin.name
}

// Number returns the LED index.
func (pin *Pin) Number() int {
	return pin.number
}

// Deprecated: returns "Out"
func (pin *Pin) Function() string {
	return "Out"
}

// Out turns the LED on for gpio.High and off for gpio.Low.
func (pin *Pin) Out(l gpio.Level) error {
	if l {
		return pin.dev.SetLED(pin.number)
	}
	return pin.dev.ClearLED(pin.number)
}

// Not implemented.
func (pin *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrNotImplemented
}

func (pin *Pin) String() string {
	return pin.name
}

var _ gpio.PinOut = &Pin{}
