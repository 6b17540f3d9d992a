package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/bodgit/fontinc/glyph"
)

type encoder struct {
	w *bufio.Writer
}

func escape(b []byte) string {
	return strings.Join(lo.Map(b, func(c byte, _ int) string {
		return fmt.Sprintf("\\x%02x", c)
	}), "")
}

func (e *encoder) encode(f *glyph.Font) error {
	for i, g := range f {
		if len(g) > glyph.MaxWidth {
			return glyph.ErrTooWide
		}

		record := append([]byte{byte(len(g))}, g...)
		if _, err := fmt.Fprintf(e.w, "\t/* 0x%02x %c */ (uint8_t *)\"%s\",\n", i, printable(i), escape(record)); err != nil {
			return err
		}
	}
	return e.w.Flush()
}

// Encode writes the Font f to w as a glyph table.
func Encode(w io.Writer, f *glyph.Font) error {
	e := encoder{w: bufio.NewWriter(w)}
	return e.encode(f)
}
