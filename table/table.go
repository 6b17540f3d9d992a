// Package table implements a reader and writer for glyph tables.
//
// A glyph table is C source text holding one line per character code, from 0
// to 255, each an entry in an array of byte strings:
//
//	/* 0x41 A */ (uint8_t *)"\x01\x60",
//
// The comment holds the character code in hexadecimal followed by the
// character itself, or an underscore when it is not printable. The first byte
// of the string is the number of column bytes that follow. Each column byte
// holds 8 vertical pixels with the top pixel as the most significant bit.
package table

import (
	"errors"
)

const (
	firstPrintable = 0x20
	lastPrintable  = 0x7e
	placeholder    = '_'
)

var (
	ErrSyntax = errors.New("table: syntax error")
	ErrLength = errors.New("table: length prefix does not match data")
	ErrOrder  = errors.New("table: character codes out of order")
	ErrCount  = errors.New("table: wrong number of entries")
)

func printable(i int) byte {
	if i >= firstPrintable && i <= lastPrintable {
		return byte(i)
	}
	return placeholder
}
