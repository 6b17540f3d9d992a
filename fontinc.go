/*
Package fontinc is a library for converting monospace bitmap font sheets into
glyph tables that can be included in C source.
*/
package fontinc

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Converter struct {
	fs     afero.Fs
	logger *zap.Logger
}

func New(fs afero.Fs, logger *zap.Logger) *Converter {
	return &Converter{
		fs:     fs,
		logger: logger,
	}
}
