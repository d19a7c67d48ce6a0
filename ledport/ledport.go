// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ledport drives a bank of 16 LEDs packed into a single 16-bit
// read/write register. Bit 0 is LED 1 and bit 15 is LED 16. A set bit means
// the LED is on.
//
// The register is usually a memory-mapped output port, see Map. Any *uint16
// works too, which is handy for tests and simulations.
//
// A Dev does no locking. When several goroutines share a Dev, the caller must
// serialize access to it.
package ledport

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3/pmem"
)

const (
	devName = "LEDPORT"
	// NumLEDs is the number of LEDs on the port.
	NumLEDs = 16
	// AllOff is the register value with every LED off.
	AllOff uint16 = 0x0000
	// AllOn is the register value with every LED on.
	AllOn uint16 = 0xffff
)

var (
	// ErrNullRegister is returned when a register is required but none is
	// bound.
	ErrNullRegister = errors.New("ledport: null register")
	// ErrInvalidParameters is returned by per-LED operations when the index
	// is outside [1, NumLEDs] or no register is bound.
	ErrInvalidParameters = errors.New("ledport: invalid parameters")
	// ErrNotImplemented is returned for features the port doesn't have.
	ErrNotImplemented = errors.New("ledport: not implemented")
)

// Dev is a 16 LED output port. The zero value is an unbound Dev.
type Dev struct {
	// Pins exposes each LED as a gpio.PinOut. Pins[0] is LED 1.
	Pins []gpio.PinOut

	reg  *uint16
	view *pmem.View
}

// New binds a Dev to reg and turns every LED off.
func New(reg *uint16) (*Dev, error) {
	dev := &Dev{}
	if err := dev.Bind(reg); err != nil {
		return nil, err
	}
	return dev, nil
}

// Map binds a Dev to the 16-bit register at physical address base.
//
// It requires access to /dev/mem, which usually means running as root.
func Map(base uint64) (*Dev, error) {
	v, err := pmem.Map(base, 2)
	if err != nil {
		return nil, wrap(err)
	}
	var reg *uint16
	if err := v.AsPOD(&reg); err != nil {
		_ = v.Close()
		return nil, wrap(err)
	}
	dev, err := New(reg)
	if err != nil {
		_ = v.Close()
		return nil, err
	}
	dev.view = v
	return dev, nil
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ledport: %w", err)
}

// Bind attaches the Dev to reg and writes AllOff to it.
//
// A previously bound register is released as is; its value is not restored
// nor cleared.
func (dev *Dev) Bind(reg *uint16) error {
	if reg == nil {
		return ErrNullRegister
	}
	dev.reg = reg
	*dev.reg = AllOff
	if dev.Pins == nil {
		dev.Pins = make([]gpio.PinOut, NumLEDs)
		for ix := range NumLEDs {
			dev.Pins[ix] = &Pin{dev: dev, number: ix + 1, name: fmt.Sprintf("%s_LED%d", devName, ix+1)}
		}
	}
	return nil
}

// Unbind turns every LED off and releases the register. It does nothing when
// the Dev is not bound.
func (dev *Dev) Unbind() {
	if dev.reg == nil {
		return
	}
	*dev.reg = AllOff
	dev.reg = nil
}

// Bound reports whether a register is attached.
func (dev *Dev) Bound() bool {
	return dev.reg != nil
}

// Halt implements conn.Resource.
//
// It turns all LEDs off and unbinds the register. A mapping created by Map is
// closed.
func (dev *Dev) Halt() error {
	dev.Unbind()
	if dev.view == nil {
		return nil
	}
	err := dev.view.Close()
	dev.view = nil
	return wrap(err)
}

// SetLED turns on LED led, leaving the others untouched.
func (dev *Dev) SetLED(led int) error {
	if dev.reg == nil {
		return ErrInvalidParameters
	}
	v, err := TurnOn(*dev.reg, led)
	if err != nil {
		return err
	}
	*dev.reg = v
	return nil
}

// ClearLED turns off LED led, leaving the others untouched.
func (dev *Dev) ClearLED(led int) error {
	if dev.reg == nil {
		return ErrInvalidParameters
	}
	v, err := TurnOff(*dev.reg, led)
	if err != nil {
		return err
	}
	*dev.reg = v
	return nil
}

// LED returns true if LED led is on.
func (dev *Dev) LED(led int) (bool, error) {
	if dev.reg == nil {
		return false, ErrInvalidParameters
	}
	return IsOn(*dev.reg, led)
}

// SetAll turns on every LED.
func (dev *Dev) SetAll() error {
	if dev.reg == nil {
		return ErrNullRegister
	}
	*dev.reg = AllOn
	return nil
}

// ClearAll turns off every LED.
func (dev *Dev) ClearAll() error {
	if dev.reg == nil {
		return ErrNullRegister
	}
	*dev.reg = AllOff
	return nil
}

// Status returns the raw register value.
func (dev *Dev) Status() (uint16, error) {
	if dev.reg == nil {
		return 0, ErrNullRegister
	}
	return *dev.reg, nil
}

// write replaces the bits selected by mask with those of value in one
// read-modify-write.
func (dev *Dev) write(value, mask uint16) error {
	if dev.reg == nil {
		return ErrInvalidParameters
	}
	*dev.reg = merge(*dev.reg, value, mask)
	return nil
}

func (dev *Dev) String() string {
	return devName
}

var _ conn.Resource = &Dev{}
