// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ledport

// Mask returns the register bit for the 1-based led index.
func Mask(led int) (uint16, error) {
	if led < 1 || led > NumLEDs {
		return 0, ErrInvalidParameters
	}
	return 1 << (led - 1), nil
}

// TurnOn returns v with the bit of led set. Other bits are preserved.
func TurnOn(v uint16, led int) (uint16, error) {
	m, err := Mask(led)
	if err != nil {
		return v, err
	}
	return v | m, nil
}

// TurnOff returns v with the bit of led cleared. Other bits are preserved.
func TurnOff(v uint16, led int) (uint16, error) {
	m, err := Mask(led)
	if err != nil {
		return v, err
	}
	return v &^ m, nil
}

// IsOn reports whether the bit of led is set in v.
func IsOn(v uint16, led int) (bool, error) {
	m, err := Mask(led)
	if err != nil {
		return false, err
	}
	return v&m != 0, nil
}

// merge replaces the bits selected by mask with those of value.
func merge(old, value, mask uint16) uint16 {
	return (old &^ mask) | (value & mask)
}
