package glyph

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankSheet returns a sheet where every glyph is empty.
func blankSheet() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, Columns*Pitch, Rows*Pitch))
	for y := 0; y < m.Rect.Dy(); y++ {
		for x := 0; x < m.Rect.Dx(); x++ {
			m.SetNRGBA(x, y, White)
		}
	}
	for i := 0; i < Count; i++ {
		o := Origin(i)
		m.SetNRGBA(o.X, o.Y, Magenta)
	}
	return m
}

// drawGlyph draws columns of bit patterns, top row first, into cell i.
func drawGlyph(m *image.NRGBA, i int, columns ...string) {
	o := Origin(i)
	for x, column := range columns {
		for y, bit := range column {
			c := White
			if bit == '1' {
				c = Black
			}
			m.SetNRGBA(o.X+x, o.Y+y, c)
		}
	}
	m.SetNRGBA(o.X+len(columns), o.Y, Magenta)
}

func TestClassify(t *testing.T) {
	tables := []struct {
		color color.Color
		class Class
	}{
		{color.White, Off},
		{color.Black, On},
		{color.RGBA{0xff, 0x00, 0xff, 0xff}, Terminator},
		{color.Gray{0xff}, Off},
		{Magenta, Terminator},
	}

	for _, table := range tables {
		c, err := Classify(table.color)
		require.NoError(t, err)
		assert.Equal(t, table.class, c)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, c := range []color.Color{
		color.RGBA{0xfe, 0xfe, 0xfe, 0xff},
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.NRGBA{0xff, 0xff, 0xff, 0x80},
		color.Transparent,
	} {
		_, err := Classify(c)
		var pe *PixelError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, color.NRGBAModel.Convert(c), pe.Color)
	}
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, image.Pt(0, 0), Origin(0x00))
	assert.Equal(t, image.Pt(150, 0), Origin(0x0f))
	assert.Equal(t, image.Pt(0, 10), Origin(0x10))
	assert.Equal(t, image.Pt(10, 40), Origin(0x41))
	assert.Equal(t, image.Pt(150, 150), Origin(0xff))
}

func TestGlyphBit(t *testing.T) {
	g := Glyph{0x81}
	assert.True(t, g.Bit(0, 0))
	assert.False(t, g.Bit(0, 1))
	assert.True(t, g.Bit(0, 7))
	assert.Equal(t, 1, g.Width())
}

func TestClassifyKeepsRawColor(t *testing.T) {
	tables := []struct {
		raw   color.Color
		color color.NRGBA
	}{
		{color.RGBA{0x40, 0x00, 0x40, 0x80}, color.NRGBA{0x7f, 0x00, 0x7f, 0x80}},
		{color.RGBA64{0xffff, 0x0000, 0xfeff, 0xffff}, color.NRGBA{0xff, 0x00, 0xfe, 0xff}},
	}

	for _, table := range tables {
		_, err := Classify(table.raw)
		var pe *PixelError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, table.raw, pe.Raw)
		assert.Equal(t, table.color, pe.Color)
		assert.Contains(t, err.Error(), fmt.Sprintf("%#v", table.raw))
	}
}
