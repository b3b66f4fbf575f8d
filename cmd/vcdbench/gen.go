package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/oklog/run"
	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"github.com/vcdbench/vcdbench/pkg/vcdgen"
	"gopkg.in/alecthomas/kingpin.v2"
)

func registerGen(app *kingpin.Application) setupFunc {
	output := app.Arg("output", "Path of the VCD file to generate.").Default("tests/large_test.vcd").String()
	sizeMB := app.Arg("size-mb", "Target size of the generated file in megabytes (MiB).").Default("100").Uint64()

	return func(g *run.Group, logger log.Logger) error {
		g.Add(func() error {
			rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
			logger := log.With(logger, "run", ulid.MustNew(ulid.Now(), rnd).String())

			spec := vcdgen.DefaultSpec(*sizeMB * vcdgen.MiB)
			stats, err := vcdgen.GenerateFile(logger, *output, spec)
			if err != nil {
				return errors.Wrapf(err, "generate %s", *output)
			}

			fi, err := os.Stat(*output)
			if err != nil {
				return errors.Wrap(err, "stat output")
			}
			level.Info(logger).Log(
				"msg", "done",
				"path", *output,
				"size", humanize.IBytes(uint64(fi.Size())),
				"sim_time", fmt.Sprintf("[0, %d]", stats.FinalTime),
				"cycles", stats.Cycles,
				"checksum", fmt.Sprintf("%016x", stats.Checksum),
			)
			return nil
		}, func(error) {})
		return nil
	}
}
