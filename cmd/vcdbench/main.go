package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"go.uber.org/automaxprocs/maxprocs"
	"gopkg.in/alecthomas/kingpin.v2"
)

type setupFunc func(*run.Group, log.Logger) error

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Generates large synthetic VCD files for stress testing waveform parsers.")
	app.HelpFlag.Short('h')
	setup := registerGen(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "error parsing commandline arguments"))
		app.Usage(os.Args[1:])
		os.Exit(2)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if _, err := maxprocs.Set(maxprocs.Logger(func(template string, args ...interface{}) {
		level.Debug(logger).Log("msg", fmt.Sprintf(template, args...))
	})); err != nil {
		level.Warn(logger).Log("msg", "failed to set GOMAXPROCS", "err", err)
	}

	var g run.Group
	if err := setup(&g, logger); err != nil {
		level.Error(logger).Log("err", errors.Wrap(err, "setup"))
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		level.Error(logger).Log("err", fmt.Sprintf("%+v", errors.Wrap(err, "run")))
		os.Exit(1)
	}
}
