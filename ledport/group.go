// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ledport

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
)

// Group implements gpio.Group over a subset of the LEDs. Bit n of a group
// value is the n-th LED passed to Dev.Group.
type Group struct {
	dev  *Dev
	pins []*Pin
}

// Group returns the LEDs identified by leds as a gpio.Group. A Group writes
// all of its LEDs in a single read-modify-write of the register.
func (dev *Dev) Group(leds ...int) (gpio.Group, error) {
	if dev.reg == nil || len(leds) == 0 || len(leds) > NumLEDs {
		return nil, ErrInvalidParameters
	}
	gr := Group{dev: dev, pins: make([]*Pin, len(leds))}
	var seen uint16
	for ix, led := range leds {
		m, err := Mask(led)
		if err != nil {
			return nil, err
		}
		if seen&m != 0 {
			return nil, ErrInvalidParameters
		}
		seen |= m
		p, ok := dev.Pins[led-1].(*Pin)
		if !ok {
			return nil, ErrInvalidParameters
		}
		gr.pins[ix] = p
	}
	return &gr, nil
}

// Pins returns the set of pins that make up the group.
func (gr *Group) Pins() []pin.Pin {
	result := make([]pin.Pin, len(gr.pins))
	for ix, p := range gr.pins {
		result[ix] = p
	}
	return result
}

// ByOffset returns the pin at offset within the group.
func (gr *Group) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(gr.pins) {
		return nil
	}
	return gr.pins[offset]
}

// ByName returns the pin called name, or nil.
func (gr *Group) ByName(name string) pin.Pin {
	for _, p := range gr.pins {
		if p.name == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin for LED number, or nil if it isn't in the group.
func (gr *Group) ByNumber(number int) pin.Pin {
	for _, p := range gr.pins {
		if p.number == number {
			return p
		}
	}
	return nil
}

// Out writes value to the LEDs of the group. Only pins identified by mask are
// modified. A mask of 0 selects every pin of the group.
func (gr *Group) Out(value, mask gpio.GPIOValue) error {
	if mask == 0 {
		mask = gr.defaultMask()
	}
	var wrValue, wrMask uint16
	for ix, p := range gr.pins {
		currentBit := gpio.GPIOValue(1 << ix)
		m, _ := Mask(p.number)
		if mask&currentBit == currentBit {
			wrMask |= m
		}
		if value&currentBit == currentBit {
			wrValue |= m
		}
	}
	return gr.dev.write(wrValue, wrMask)
}

// Read returns the state of the LEDs of the group selected by mask. A mask
// of 0 selects every pin of the group.
func (gr *Group) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	if mask == 0 {
		mask = gr.defaultMask()
	}
	if !gr.dev.Bound() {
		return 0, ErrInvalidParameters
	}
	v := *gr.dev.reg
	var result gpio.GPIOValue
	for ix, p := range gr.pins {
		on, _ := IsOn(v, p.number)
		if on {
			result |= 1 << ix
		}
	}
	return result & mask, nil
}

// WaitForEdge is not available, the port has no interrupts.
func (gr *Group) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	return 0, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

// Halt frees the group's resources and prevents it from being used again.
func (gr *Group) Halt() error {
	gr.pins = nil
	return nil
}

func (gr *Group) String() string {
	s := gr.dev.String() + "[ "
	for _, p := range gr.pins {
		s += fmt.Sprintf("%d ", p.number)
	}
	s += "]"
	return s
}

func (gr *Group) defaultMask() gpio.GPIOValue {
	return gpio.GPIOValue(1<<len(gr.pins)) - 1
}

var _ gpio.Group = &Group{}
