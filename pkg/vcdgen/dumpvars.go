package vcdgen

import "github.com/pkg/errors"

// WriteDumpVars writes the $dumpvars block with every signal at zero, single-bit
// signals first. It matches the state returned by NewValueState.
func WriteDumpVars(w *Writer, c *Catalog) error {
	w.WriteString("$dumpvars\n")
	for _, s := range c.SingleBit {
		w.Scalar('0', s.ID)
	}
	for _, s := range c.MultiBit {
		w.Vector(0, s.Width, s.ID)
	}
	w.WriteString("$end\n")
	return errors.Wrap(w.Err(), "write dumpvars")
}
