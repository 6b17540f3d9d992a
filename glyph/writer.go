package glyph

import (
	"image"
)

// Encode draws f onto a new sheet. Each glyph is followed by a terminator
// pixel on its top row and everything else is left white. Glyphs must leave
// room in their cell for the terminator.
func Encode(f *Font) (*image.Paletted, error) {
	m := image.NewPaletted(image.Rect(0, 0, Columns*Pitch, Rows*Pitch), Palette)

	for i, g := range f {
		if len(g) > Pitch-1 {
			return nil, ErrTooWide
		}

		o := Origin(i)
		for x := range g {
			for y := 0; y < Height; y++ {
				if g.Bit(x, y) {
					m.SetColorIndex(o.X+x, o.Y+y, uint8(On))
				}
			}
		}
		m.SetColorIndex(o.X+len(g), o.Y, uint8(Terminator))
	}

	return m, nil
}
