package vcdgen

import (
	"math/rand"
)

const (
	// Chance of a selected single-bit signal going to x or z instead of toggling.
	undefinedChance = 0.02
	highZChance     = 0.02

	minVectorChanges = 2
	maxVectorChanges = 8
)

// ScalarChange is a single-bit value change: '0', '1', 'x' or 'z'.
type ScalarChange struct {
	ID    string
	Value byte
}

// VectorChange is a multi-bit value change.
type VectorChange struct {
	ID    string
	Width int
	Bits  uint64
}

// Cycle is one simulation time step with all value changes at that time.
type Cycle struct {
	Time    uint64
	Scalars []ScalarChange
	Vectors []VectorChange
}

// ValueState holds the last toggled value of every signal, indexed like the
// Catalog slices.
type ValueState struct {
	SingleBit []uint8
	MultiBit  []uint64
}

// NewValueState returns all signals at zero, which is what $dumpvars declares.
func NewValueState(c *Catalog) *ValueState {
	return &ValueState{
		SingleBit: make([]uint8, len(c.SingleBit)),
		MultiBit:  make([]uint64, len(c.MultiBit)),
	}
}

// ChangeGen produces an endless stream of pseudo-random value change cycles.
// Time starts at 0 and moves by timeStep every cycle.
//
// Every cycle toggles a random subset of toggleBudget/2 to toggleBudget
// single-bit signals, occasionally driving one to x or z instead. x and z are
// not remembered: the next toggle flips the last 0/1 value. Every cycle also
// sets 2 to 8 random multi-bit signals to random values.
type ChangeGen struct {
	catalog  *Catalog
	state    *ValueState
	random   *rand.Rand
	timeStep uint64
	budget   int

	time   uint64
	cycles uint64
	curr   Cycle

	// Index pools sampled without replacement every cycle.
	scalarIdx []int
	vectorIdx []int
}

func NewChangeGen(random *rand.Rand, c *Catalog, state *ValueState, timeStep uint64, toggleBudget int) *ChangeGen {
	g := &ChangeGen{
		catalog:   c,
		state:     state,
		random:    random,
		timeStep:  timeStep,
		budget:    toggleBudget,
		scalarIdx: make([]int, len(c.SingleBit)),
		vectorIdx: make([]int, len(c.MultiBit)),
	}
	for i := range g.scalarIdx {
		g.scalarIdx[i] = i
	}
	for i := range g.vectorIdx {
		g.vectorIdx[i] = i
	}
	return g
}

// Next generates the next cycle. The stream is endless; callers decide when to stop.
func (g *ChangeGen) Next() {
	g.curr.Time = g.time
	g.curr.Scalars = g.curr.Scalars[:0]
	g.curr.Vectors = g.curr.Vectors[:0]

	n := g.budget/2 + g.random.Intn(g.budget-g.budget/2+1)
	for _, i := range g.sample(g.scalarIdx, n) {
		var v byte
		switch r := g.random.Float64(); {
		case r < undefinedChance:
			v = 'x'
		case r < undefinedChance+highZChance:
			v = 'z'
		default:
			g.state.SingleBit[i] ^= 1
			v = '0' + g.state.SingleBit[i]
		}
		g.curr.Scalars = append(g.curr.Scalars, ScalarChange{ID: g.catalog.SingleBit[i].ID, Value: v})
	}

	lo, hi := minInt(minVectorChanges, len(g.vectorIdx)), minInt(maxVectorChanges, len(g.vectorIdx))
	n = lo + g.random.Intn(hi-lo+1)
	for _, i := range g.sample(g.vectorIdx, n) {
		s := g.catalog.MultiBit[i]
		bits := randomBits(g.random, s.Width)
		g.state.MultiBit[i] = bits
		g.curr.Vectors = append(g.curr.Vectors, VectorChange{ID: s.ID, Width: s.Width, Bits: bits})
	}

	g.time += g.timeStep
	g.cycles++
}

// At returns the current cycle. It is only valid until the next call to Next.
func (g *ChangeGen) At() Cycle { return g.curr }

// Time returns the time of the cycle Next would generate, i.e. the end of the
// simulated interval so far.
func (g *ChangeGen) Time() uint64 { return g.time }

// Cycles returns the number of cycles generated so far.
func (g *ChangeGen) Cycles() uint64 { return g.cycles }

// sample moves n randomly chosen elements of idx to its front (partial
// Fisher-Yates) and returns them. n is clamped to len(idx).
func (g *ChangeGen) sample(idx []int, n int) []int {
	if n > len(idx) {
		n = len(idx)
	}
	for i := 0; i < n; i++ {
		j := i + g.random.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:n]
}

// randomBits returns a uniform value in [0, 2^width), 1 <= width <= 64.
func randomBits(random *rand.Rand, width int) uint64 {
	return random.Uint64() >> uint(64-width)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
