package glyph

import (
	"fmt"
	"image"
)

// Sheet classifies the pixels of a font sheet image. Each pixel is looked up
// in the underlying image at most once.
type Sheet struct {
	m     image.Image
	min   image.Point
	w, h  int
	cache []Class
	seen  []bool
}

// NewSheet wraps m. The image must be large enough to hold the whole grid.
func NewSheet(m image.Image) (*Sheet, error) {
	b := m.Bounds()
	if b.Dx() < minX || b.Dy() < minY {
		return nil, ErrWrongSize
	}
	return &Sheet{
		m:     m,
		min:   b.Min,
		w:     b.Dx(),
		h:     b.Dy(),
		cache: make([]Class, b.Dx()*b.Dy()),
		seen:  make([]bool, b.Dx()*b.Dy()),
	}, nil
}

// Bounds returns the sheet size with the top-left corner at (0, 0).
func (s *Sheet) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.w, s.h)
}

// Class returns the classification of the pixel at (x, y), relative to the
// top-left corner of the image.
func (s *Sheet) Class(x, y int) (Class, error) {
	i := y*s.w + x
	if s.seen[i] {
		return s.cache[i], nil
	}

	c, err := Classify(s.m.At(s.min.X+x, s.min.Y+y))
	if err != nil {
		pe := err.(*PixelError)
		pe.X, pe.Y = x, y
		return 0, pe
	}

	s.cache[i], s.seen[i] = c, true
	return c, nil
}

// column packs the 8 pixels starting at (x, y) downwards, top pixel first.
func (s *Sheet) column(x, y int) (byte, error) {
	var b byte
	for dy := 0; dy < Height; dy++ {
		c, err := s.Class(x, y+dy)
		if err != nil {
			return 0, err
		}
		// A terminator below the top row carries no bit
		if c == Terminator {
			return 0, fmt.Errorf("%w at x = %d y = %d", ErrTerminator, x, y+dy)
		}
		b = b<<1 | byte(c)
	}
	return b, nil
}

// Glyph reads the glyph for character code i.
func (s *Sheet) Glyph(i int) (Glyph, error) {
	o := Origin(i)

	g := Glyph{}
	for x := o.X; ; x++ {
		if x >= s.w {
			return nil, fmt.Errorf("%w: glyph 0x%02x at x = %d y = %d", ErrUnterminated, i, o.X, o.Y)
		}

		c, err := s.Class(x, o.Y)
		if err != nil {
			return nil, err
		}
		if c == Terminator {
			break
		}

		if len(g) == MaxWidth {
			return nil, fmt.Errorf("%w: glyph 0x%02x at x = %d y = %d", ErrTooWide, i, o.X, o.Y)
		}

		b, err := s.column(x, o.Y)
		if err != nil {
			return nil, err
		}
		g = append(g, b)
	}

	return g, nil
}

// Decode reads every glyph from the sheet m.
func Decode(m image.Image) (*Font, error) {
	s, err := NewSheet(m)
	if err != nil {
		return nil, err
	}

	var f Font
	for i := range f {
		if f[i], err = s.Glyph(i); err != nil {
			return nil, err
		}
	}
	return &f, nil
}
