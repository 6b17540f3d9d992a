package fontinc

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

// commit replaces file with b. The data is written to a temporary file in
// the same directory first so an existing file is never left truncated.
func (c *Converter) commit(file string, b []byte) error {
	tmp := filepath.Join(filepath.Dir(file), "."+filepath.Base(file)+"."+xid.New().String())

	if err := afero.WriteFile(c.fs, tmp, b, 0644); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Wrapf(err, "write %s", file)
	}

	if err := c.fs.Rename(tmp, file); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Wrapf(err, "rename %s", file)
	}

	return nil
}
