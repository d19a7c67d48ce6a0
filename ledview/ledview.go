// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ledview shows the content of a 16 LED register, either on a
// terminal (stdout) using ANSI color codes or as an image.
//
// Useful while the board with the actual LEDs is still on your desk.
package ledview

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/leddevices/ledport"
	"github.com/fogleman/gg"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/colornames"
)

// Opts represents the options available for this view.
type Opts struct {
	// W defaults to a colorable stdout.
	W io.Writer
	// On and Off are the colors of lit and unlit LEDs.
	On  color.Color
	Off color.Color
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev renders register values to the console.
type Dev struct {
	w       io.Writer
	on      color.NRGBA
	off     color.NRGBA
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console. opts may be nil.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	d := &Dev{w: opts.W}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	d.on, d.off = colors(opts.On, opts.Off)
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d.palette = *p
	return d
}

func (d *Dev) String() string {
	return "LEDView"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Show redraws the current console line with one block per LED, LED 1
// leftmost.
func (d *Dev) Show(v uint16) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for led := 1; led <= ledport.NumLEDs; led++ {
		c := d.off
		if on, _ := ledport.IsOn(v, led); on {
			c = d.on
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return err
}

// ShowDev shows the register bound to dev.
func (d *Dev) ShowDev(dev *ledport.Dev) error {
	v, err := dev.Status()
	if err != nil {
		return err
	}
	return d.Show(v)
}

// Render returns an image of the LEDs as a row of filled circles, each in a
// cell x cell square. LED 1 is leftmost. cell is at least 2.
func Render(v uint16, cell int, opts *Opts) image.Image {
	if cell < 2 {
		cell = 2
	}
	var optOn, optOff color.Color
	if opts != nil {
		optOn, optOff = opts.On, opts.Off
	}
	on, off := colors(optOn, optOff)
	dc := gg.NewContext(cell*ledport.NumLEDs, cell)
	dc.SetColor(color.Black)
	dc.Clear()
	r := float64(cell) / 2
	for led := 1; led <= ledport.NumLEDs; led++ {
		c := off
		if lit, _ := ledport.IsOn(v, led); lit {
			c = on
		}
		dc.SetColor(c)
		dc.DrawCircle(float64(cell*(led-1))+r, r, r-1)
		dc.Fill()
	}
	return dc.Image()
}

// colors fills in the default colors and converts them to the palette's
// color model.
func colors(on, off color.Color) (color.NRGBA, color.NRGBA) {
	if on == nil {
		on = colornames.Red
	}
	if off == nil {
		off = colornames.Dimgray
	}
	return toNRGBA(on), toNRGBA(off)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
