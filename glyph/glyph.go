/*
Package glyph implements a decoder and encoder for monospace font sheets.

A sheet is an image split into a 16 by 16 grid of cells with a pitch of 10
pixels, one cell per character code. Each glyph is 8 pixels tall and is
drawn as a run of columns starting at the top-left corner of its cell. The
run ends at the first column whose top pixel is magenta. Only three colors
may appear: white is an unset pixel, black is a set pixel and magenta
terminates a glyph.

Each column is packed into one byte with the top pixel as the most
significant bit.
*/
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

const (
	Columns  = 16
	Rows     = 16
	Count    = Columns * Rows
	Pitch    = 10
	Height   = 8
	MaxWidth = 0xff
	minX     = (Columns-1)*Pitch + 1
	minY     = (Rows-1)*Pitch + Height
)

var (
	ErrWrongSize    = errors.New("glyph: image is wrong size")
	ErrUnterminated = errors.New("glyph: glyph is not terminated")
	ErrTooWide      = errors.New("glyph: glyph is too wide")
	ErrTerminator   = errors.New("glyph: terminator inside glyph column")
)

var (
	White   = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	Black   = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	Magenta = color.NRGBA{0xff, 0x00, 0xff, 0xff}
)

// Palette is the color palette used by sheets, indexed by Class.
var Palette = color.Palette{White, Black, Magenta}

// Class is the classification of a single sheet pixel.
type Class uint8

const (
	Off Class = iota
	On
	Terminator
)

func (c Class) String() string {
	switch c {
	case Off:
		return "off"
	case On:
		return "on"
	case Terminator:
		return "terminator"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// PixelError records a pixel that is none of the three sheet colors. Raw is
// the color as held by the image and Color is its non-premultiplied form.
type PixelError struct {
	X, Y  int
	Raw   color.Color
	Color color.NRGBA
}

func (e *PixelError) Error() string {
	return fmt.Sprintf("glyph: bad pixel at x = %d y = %d: unknown color %#v (%d, %d, %d, %d)", e.X, e.Y, e.Raw, e.Color.R, e.Color.G, e.Color.B, e.Color.A)
}

// Classify maps c to its Class. The returned error is a *PixelError with
// the coordinate left unset.
func Classify(c color.Color) (Class, error) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch n {
	case White:
		return Off, nil
	case Black:
		return On, nil
	case Magenta:
		return Terminator, nil
	}
	return 0, &PixelError{Raw: c, Color: n}
}

// Glyph is the packed columns of a single glyph, left to right.
type Glyph []byte

// Width returns the number of columns.
func (g Glyph) Width() int {
	return len(g)
}

// Bit returns the pixel at column x, row y.
func (g Glyph) Bit(x, y int) bool {
	return g[x]>>(Height-1-y)&1 != 0
}

// Font is a complete sheet worth of glyphs indexed by character code.
type Font [Count]Glyph

// Origin returns the top-left corner of the cell for character code i.
func Origin(i int) image.Point {
	return image.Pt(i%Columns*Pitch, i/Columns*Pitch)
}
