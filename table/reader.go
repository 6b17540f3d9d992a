package table

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/bodgit/fontinc/glyph"
)

var entry = regexp.MustCompile(`^\t/\* 0x([0-9a-f]{2}) (.) \*/ \(uint8_t \*\)"((?:\\x[0-9a-f]{2})+)",$`)

type decoder struct {
	s    *bufio.Scanner
	line int
	font glyph.Font
}

func unescape(s string) ([]byte, error) {
	return hex.DecodeString(strings.ReplaceAll(s, `\x`, ""))
}

func (d *decoder) decodeLine(i int, text string) error {
	m := entry.FindStringSubmatch(text)
	if m == nil {
		return fmt.Errorf("%w on line %d", ErrSyntax, d.line)
	}

	code, err := strconv.ParseUint(m[1], 16, 8)
	if err != nil {
		return fmt.Errorf("%w on line %d", ErrSyntax, d.line)
	}
	if int(code) != i || m[2][0] != printable(i) {
		return fmt.Errorf("%w on line %d", ErrOrder, d.line)
	}

	record, err := unescape(m[3])
	if err != nil {
		return fmt.Errorf("%w on line %d", ErrSyntax, d.line)
	}
	if int(record[0]) != len(record)-1 {
		return fmt.Errorf("%w on line %d", ErrLength, d.line)
	}

	d.font[i] = glyph.Glyph(record[1:])
	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.s = bufio.NewScanner(r)

	for d.s.Scan() {
		if d.line == glyph.Count {
			return ErrCount
		}
		d.line++
		if err := d.decodeLine(d.line-1, d.s.Text()); err != nil {
			return err
		}
	}
	if err := d.s.Err(); err != nil {
		return err
	}

	if d.line != glyph.Count {
		return ErrCount
	}
	return nil
}

// Decode reads a glyph table from r.
func Decode(r io.Reader) (*glyph.Font, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return &d.font, nil
}
