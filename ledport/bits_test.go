// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ledport

import (
	"errors"
	"testing"
)

func TestMask(t *testing.T) {
	var tests = []struct {
		led  int
		mask uint16
		err  error
	}{
		{led: 0, err: ErrInvalidParameters},
		{led: -3, err: ErrInvalidParameters},
		{led: 1, mask: 0x0001},
		{led: 8, mask: 0x0080},
		{led: 16, mask: 0x8000},
		{led: 17, err: ErrInvalidParameters},
	}
	for _, test := range tests {
		m, err := Mask(test.led)
		if !errors.Is(err, test.err) {
			t.Errorf("Mask(%d) returned error %v, expected %v", test.led, err, test.err)
		}
		if m != test.mask {
			t.Errorf("Mask(%d)=%#04x, expected %#04x", test.led, m, test.mask)
		}
	}
}

func TestTurnOnOff(t *testing.T) {
	var tests = []struct {
		v   uint16
		led int
		on  uint16
		off uint16
	}{
		{v: 0x0000, led: 1, on: 0x0001, off: 0x0000},
		{v: 0xffff, led: 1, on: 0xffff, off: 0xfffe},
		{v: 0x0f0f, led: 5, on: 0x0f1f, off: 0x0f0f},
		{v: 0x0f0f, led: 4, on: 0x0f0f, off: 0x0f07},
		{v: 0x7fff, led: 16, on: 0xffff, off: 0x7fff},
	}
	for _, test := range tests {
		if v, err := TurnOn(test.v, test.led); err != nil || v != test.on {
			t.Errorf("TurnOn(%#04x, %d)=%#04x, %v expected %#04x", test.v, test.led, v, err, test.on)
		}
		if v, err := TurnOff(test.v, test.led); err != nil || v != test.off {
			t.Errorf("TurnOff(%#04x, %d)=%#04x, %v expected %#04x", test.v, test.led, v, err, test.off)
		}
	}
}

func TestPureRejectsIndex(t *testing.T) {
	for _, led := range []int{0, 17} {
		if v, err := TurnOn(0x1234, led); !errors.Is(err, ErrInvalidParameters) || v != 0x1234 {
			t.Errorf("TurnOn(0x1234, %d)=%#04x, %v", led, v, err)
		}
		if v, err := TurnOff(0x1234, led); !errors.Is(err, ErrInvalidParameters) || v != 0x1234 {
			t.Errorf("TurnOff(0x1234, %d)=%#04x, %v", led, v, err)
		}
		if _, err := IsOn(0x1234, led); !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("IsOn(0x1234, %d) returned %v", led, err)
		}
	}
}

func TestIsOn(t *testing.T) {
	const v = 0x8004
	for led := 1; led <= NumLEDs; led++ {
		on, err := IsOn(v, led)
		if err != nil {
			t.Fatal(err)
		}
		expected := led == 3 || led == 16
		if on != expected {
			t.Errorf("IsOn(%#04x, %d)=%t", v, led, on)
		}
	}
}

func TestMerge(t *testing.T) {
	if v := merge(0xff00, 0x00ff, 0x0ff0); v != 0xf0f0 {
		t.Errorf("merge()=%#04x expected 0xf0f0", v)
	}
}
