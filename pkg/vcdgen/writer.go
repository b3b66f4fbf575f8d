package vcdgen

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const writeBufferSize = 1 << 20

// Writer writes VCD records to an append-only stream. It counts the bytes
// written so far and keeps a running checksum over them, so the stream never
// needs to be seekable.
//
// The first write error is sticky: all later writes are dropped and Err keeps
// returning it. Not designed to be thread-safe.
type Writer struct {
	w      *bufio.Writer
	digest *xxhash.Digest

	written uint64
	err     error

	// buf is reused to format one record at a time.
	buf []byte
}

// NewWriter returns a buffered Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:      bufio.NewWriterSize(w, writeBufferSize),
		digest: xxhash.New(),
		buf:    make([]byte, 0, 128),
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	_, _ = w.digest.Write(p[:n])
	w.written += uint64(n)
	w.err = err
	return n, err
}

// WriteString writes s.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	n, err := w.w.WriteString(s)
	_, _ = w.digest.WriteString(s[:n])
	w.written += uint64(n)
	w.err = err
}

// Written returns the number of bytes accepted so far, flushed or not.
func (w *Writer) Written() uint64 { return w.written }

// Sum64 returns the xxhash of all bytes accepted so far.
func (w *Writer) Sum64() uint64 { return w.digest.Sum64() }

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Flush writes any buffered data to the underlying stream.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Scalar writes a single-bit value change, e.g. "1!".
func (w *Writer) Scalar(v byte, id string) {
	b := append(w.buf[:0], v)
	b = append(b, id...)
	w.buf = append(b, '\n')
	_, _ = w.Write(w.buf)
}

// Vector writes a multi-bit value change as a zero-padded binary literal of
// exactly width digits, e.g. "b00001010 #".
func (w *Writer) Vector(bits uint64, width int, id string) {
	b := append(w.buf[:0], 'b')
	b = appendBinary(b, bits, width)
	b = append(b, ' ')
	b = append(b, id...)
	w.buf = append(b, '\n')
	_, _ = w.Write(w.buf)
}

// Timestamp writes a simulation time marker, e.g. "#42".
func (w *Writer) Timestamp(t uint64) {
	b := append(w.buf[:0], '#')
	b = strconv.AppendUint(b, t, 10)
	w.buf = append(b, '\n')
	_, _ = w.Write(w.buf)
}

// WriteCycle writes the time marker of c followed by all its changes.
func (w *Writer) WriteCycle(c Cycle) {
	w.Timestamp(c.Time)
	for _, s := range c.Scalars {
		w.Scalar(s.Value, s.ID)
	}
	for _, v := range c.Vectors {
		w.Vector(v.Bits, v.Width, v.ID)
	}
}

func appendBinary(b []byte, v uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		b = append(b, '0'+byte(v>>uint(i)&1))
	}
	return b
}
