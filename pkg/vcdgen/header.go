package vcdgen

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	dateComment    = "Generated for stress test"
	versionComment = "vcdbench v1.0"
)

// WriteHeader writes the VCD preamble and the declaration section, up to and
// including $enddefinitions.
//
// Scopes are declared depth first. Every scope lists the signals it owns
// before its children. Signals owned by a path that is not part of root are
// never declared.
func WriteHeader(w *Writer, timescale string, root Scope, c *Catalog) error {
	w.WriteString("$date\n  " + dateComment + "\n$end\n")
	w.WriteString("$version\n  " + versionComment + "\n$end\n")
	w.WriteString("$timescale " + timescale + " $end\n")

	owned := map[string][]Signal{}
	for _, s := range c.All() {
		owned[s.Scope] = append(owned[s.Scope], s)
	}
	writeScope(w, root, "", owned)

	w.WriteString("$enddefinitions $end\n")
	return errors.Wrap(w.Err(), "write header")
}

func writeScope(w *Writer, s Scope, parent string, owned map[string][]Signal) {
	path := joinScopePath(parent, s.Name)
	w.WriteString("$scope module " + s.Name + " $end\n")
	for _, sig := range owned[path] {
		w.WriteString("$var wire " + strconv.Itoa(sig.Width) + " " + sig.ID + " " + sig.Name + " $end\n")
	}
	for _, c := range s.Children {
		writeScope(w, c, path, owned)
	}
	w.WriteString("$upscope $end\n")
}
