package main

import (
	"errors"
	"log"
	"os"

	"github.com/bodgit/fontinc"
	"github.com/bodgit/fontinc/glyph"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errPairs = errors.New("arguments must be IMAGE OUTPUT pairs")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lo.Ternary(c.Bool("verbose"), zapcore.DebugLevel, zapcore.InfoLevel))
	return config.Build()
}

func newConverter(c *cli.Context) (*fontinc.Converter, *zap.Logger, error) {
	logger, err := newLogger(c)
	if err != nil {
		return nil, nil, err
	}
	return fontinc.New(afero.NewOsFs(), logger), logger, nil
}

func parseJobs(args []string) ([]fontinc.Job, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errPairs
	}
	return lo.Map(lo.Chunk(args, 2), func(pair []string, _ int) fontinc.Job {
		return fontinc.Job{Image: pair[0], Output: pair[1]}
	}), nil
}

func convert(c *cli.Context) error {
	jobs, err := parseJobs(c.Args().Slice())
	if err != nil {
		return cli.Exit(err, 1)
	}

	fi, logger, err := newConverter(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	if err := fi.Run(jobs...); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func build(c *cli.Context) error {
	fi, logger, err := newConverter(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	if err := fi.Run(fontinc.DefaultJobs(c.String("dir"))...); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func check(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	fi, logger, err := newConverter(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	for _, file := range c.Args().Slice() {
		f, err := fi.Check(file)
		if err != nil {
			return cli.Exit(err, 1)
		}

		widths := lo.Map(f[:], func(g glyph.Glyph, _ int) int {
			return g.Width()
		})
		logger.Info("ok", zap.String("image", file), zap.Int("max", lo.Max(widths)), zap.Int("empty", lo.Count(widths, 0)))
		logger.Debug("widths", zap.String("image", file), zap.Ints("widths", widths))
	}

	return nil
}

func render(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	fi, logger, err := newConverter(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer logger.Sync()

	if err := fi.Render(c.Args().Get(0), c.Args().Get(1)); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "fontinc"
	app.Usage = "Bitmap font sheet to C glyph table converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			EnvVars: []string{"FONTINC_DIR"},
			Value:   cwd,
			Usage:   "base directory for the build command",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert font sheets to glyph tables",
			ArgsUsage: "IMAGE OUTPUT [IMAGE OUTPUT...]",
			Action:    convert,
		},
		{
			Name:        "build",
			Usage:       "Convert the firmware font sheets",
			Description: "Converts fonts/fontfixed.png to fontfixed.inc and fonts/font.png to font.inc under the base directory",
			Action:      build,
		},
		{
			Name:      "check",
			Usage:     "Validate font sheets without writing anything",
			ArgsUsage: "IMAGE...",
			Action:    check,
		},
		{
			Name:      "render",
			Usage:     "Render a glyph table back to a font sheet",
			ArgsUsage: "TABLE OUTPUT",
			Action:    render,
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
