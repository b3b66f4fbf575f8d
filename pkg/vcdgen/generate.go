package vcdgen

import (
	"io"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/efficientgo/tools/core/pkg/errcapture"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Stats summarises a finished dump.
type Stats struct {
	Signals int
	// Bytes is the size of the dump.
	Bytes uint64
	// FinalTime is the end of the simulated interval, one step after the last time marker.
	FinalTime uint64
	Cycles    uint64
	// Checksum is the xxhash of the whole dump.
	Checksum uint64
}

// GenerateFile creates (or truncates) the file at path and writes a dump for
// spec into it. The file is closed on all paths.
func GenerateFile(logger log.Logger, path string, spec Spec) (_ Stats, err error) {
	f, err := os.Create(path)
	if err != nil {
		return Stats{}, errors.Wrap(err, "create output")
	}
	defer errcapture.Do(&err, f.Close, "close output")

	level.Info(logger).Log(
		"msg", "generating vcd",
		"path", path,
		"target", humanize.IBytes(spec.TargetBytes),
		"single_bit_signals", spec.SingleBitSignals,
		"multi_bit_signals", spec.MultiBitSignals,
		"signals", spec.SingleBitSignals+spec.MultiBitSignals,
	)
	return Generate(logger, f, spec)
}

// Generate writes a complete dump for spec into w: header, $dumpvars and value
// change cycles until at least spec.TargetBytes were written.
func Generate(logger log.Logger, w io.Writer, spec Spec) (Stats, error) {
	if err := spec.Validate(); err != nil {
		return Stats{}, errors.Wrap(err, "invalid spec")
	}

	ids := &IDAllocator{}
	catalog := BuildCatalog(ids, spec.Root.Flatten(), spec.SingleBitSignals, spec.MultiBitSignals, spec.Widths)

	vw := NewWriter(w)
	if err := WriteHeader(vw, spec.Timescale, spec.Root, catalog); err != nil {
		return Stats{}, err
	}
	if err := WriteDumpVars(vw, catalog); err != nil {
		return Stats{}, err
	}

	gen := NewChangeGen(rand.New(rand.NewSource(spec.Seed)), catalog, NewValueState(catalog), spec.TimeStep, spec.ToggleBudget)
	finalTime, cycles, err := Run(logger, vw, gen, spec.TargetBytes, spec.ReportInterval)
	if err != nil {
		return Stats{}, err
	}
	if err := vw.Flush(); err != nil {
		return Stats{}, errors.Wrap(err, "flush")
	}

	return Stats{
		Signals:   int(ids.Allocated()),
		Bytes:     vw.Written(),
		FinalTime: finalTime,
		Cycles:    cycles,
		Checksum:  vw.Sum64(),
	}, nil
}

// Run writes cycles from gen into w until w holds at least targetBytes. The
// last cycle is always written whole, so the target can be overshot by up to
// one cycle. Progress is logged every reportInterval bytes.
func Run(logger log.Logger, w *Writer, gen *ChangeGen, targetBytes, reportInterval uint64) (finalTime, cycles uint64, err error) {
	nextReport := reportInterval
	for w.Written() < targetBytes {
		gen.Next()
		w.WriteCycle(gen.At())
		if err := w.Err(); err != nil {
			return gen.Time(), gen.Cycles(), errors.Wrapf(err, "write cycle %d", gen.Cycles())
		}

		if w.Written() >= nextReport {
			level.Info(logger).Log(
				"msg", "progress",
				"size", humanize.IBytes(w.Written()),
				"time", gen.Time(),
				"cycles", gen.Cycles(),
			)
			nextReport += reportInterval
		}
	}
	return gen.Time(), gen.Cycles(), nil
}
