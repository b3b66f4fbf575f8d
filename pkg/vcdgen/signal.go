package vcdgen

import "fmt"

// Signal is a declared VCD wire.
type Signal struct {
	ID    string
	Name  string
	Width int
	// Scope is the full dotted path of the owning scope.
	Scope string
}

// Catalog is the ordered set of signals of one dump. Single-bit signals were
// allocated first, multi-bit ones after; both slices keep allocation order.
type Catalog struct {
	SingleBit []Signal
	MultiBit  []Signal
}

// BuildCatalog declares numSingleBit single-bit and numMultiBit multi-bit
// signals. Owning scopes are assigned round-robin over scopes, multi-bit widths
// round-robin over widths. scopes must not be empty if any signal is requested,
// neither may widths if multi-bit signals are requested.
func BuildCatalog(ids *IDAllocator, scopes []string, numSingleBit, numMultiBit int, widths []int) *Catalog {
	c := &Catalog{
		SingleBit: make([]Signal, 0, numSingleBit),
		MultiBit:  make([]Signal, 0, numMultiBit),
	}
	for i := 0; i < numSingleBit; i++ {
		c.SingleBit = append(c.SingleBit, Signal{
			ID:    ids.Next(),
			Name:  fmt.Sprintf("sig1b_%d", i),
			Width: 1,
			Scope: scopes[i%len(scopes)],
		})
	}
	for i := 0; i < numMultiBit; i++ {
		w := widths[i%len(widths)]
		c.MultiBit = append(c.MultiBit, Signal{
			ID:    ids.Next(),
			Name:  fmt.Sprintf("sig%db_%d", w, i),
			Width: w,
			Scope: scopes[i%len(scopes)],
		})
	}
	return c
}

// All returns every signal in allocation order.
func (c *Catalog) All() []Signal {
	all := make([]Signal, 0, c.Len())
	all = append(all, c.SingleBit...)
	return append(all, c.MultiBit...)
}

// Len returns the total number of signals.
func (c *Catalog) Len() int { return len(c.SingleBit) + len(c.MultiBit) }
