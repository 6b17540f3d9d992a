package fontinc

import (
	"bytes"
	"image"
	"path/filepath"

	"github.com/bodgit/fontinc/glyph"
	"github.com/bodgit/fontinc/table"
	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Job is a single sheet to table conversion.
type Job struct {
	Image  string
	Output string
}

// DefaultJobs returns the conversions needed to build the firmware fonts
// found under dir.
func DefaultJobs(dir string) []Job {
	return []Job{
		{
			Image:  filepath.Join(dir, "fonts", "fontfixed.png"),
			Output: filepath.Join(dir, "fontfixed.inc"),
		},
		{
			Image:  filepath.Join(dir, "fonts", "font.png"),
			Output: filepath.Join(dir, "font.inc"),
		},
	}
}

func (c *Converter) load(file string) (image.Image, error) {
	f, err := c.fs.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", file)
	}
	defer f.Close()

	m, err := imaging.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", file)
	}

	return m, nil
}

// Check reads every glyph from the sheet in file without writing anything.
func (c *Converter) Check(file string) (*glyph.Font, error) {
	m, err := c.load(file)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("loaded sheet", zap.String("image", file), zap.Stringer("bounds", m.Bounds()))

	f, err := glyph.Decode(m)
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", file)
	}

	return f, nil
}

// Convert reads the sheet in file and writes its glyph table to output.
// Nothing is written unless every glyph converts.
func (c *Converter) Convert(file, output string) error {
	f, err := c.Check(file)
	if err != nil {
		return err
	}

	var b bytes.Buffer
	if err := table.Encode(&b, f); err != nil {
		return errors.Wrapf(err, "encode %s", output)
	}

	if err := c.commit(output, b.Bytes()); err != nil {
		return err
	}

	c.logger.Info("converted", zap.String("image", file), zap.String("output", output), zap.Stringer("size", bytesize.New(float64(b.Len()))))

	return nil
}

// Run performs each job in turn, stopping at the first failure.
func (c *Converter) Run(jobs ...Job) error {
	for _, job := range jobs {
		if err := c.Convert(job.Image, job.Output); err != nil {
			return err
		}
	}
	return nil
}

// Render reads the glyph table in file and writes a PNG sheet to output that
// converts back to the same table.
func (c *Converter) Render(file, output string) error {
	r, err := c.fs.Open(file)
	if err != nil {
		return errors.Wrapf(err, "open %s", file)
	}
	defer r.Close()

	f, err := table.Decode(r)
	if err != nil {
		return errors.Wrapf(err, "decode %s", file)
	}

	m, err := glyph.Encode(f)
	if err != nil {
		return errors.Wrapf(err, "render %s", file)
	}

	var b bytes.Buffer
	if err := imaging.Encode(&b, m, imaging.PNG); err != nil {
		return errors.Wrapf(err, "encode %s", output)
	}

	if err := c.commit(output, b.Bytes()); err != nil {
		return err
	}

	c.logger.Info("rendered", zap.String("table", file), zap.String("output", output), zap.Stringer("size", bytesize.New(float64(b.Len()))))

	return nil
}
