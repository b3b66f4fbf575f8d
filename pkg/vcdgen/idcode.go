package vcdgen

const (
	// VCD identifier codes use printable ASCII from '!' (33) to '~' (126).
	idCodeFirst = '!'
	idCodeBase  = '~' - '!' + 1
)

// IDCode returns the identifier code for n. The code is n written in base 94,
// least significant digit first, with every digit mapped onto printable ASCII.
func IDCode(n uint64) string {
	// 94^10 > 2^64.
	var b [10]byte
	i := 0
	for {
		b[i] = byte(idCodeFirst + n%idCodeBase)
		i++
		n /= idCodeBase
		if n == 0 {
			break
		}
	}
	return string(b[:i])
}

// IDAllocator hands out unique identifier codes in allocation order.
// Not thread-safe.
type IDAllocator struct {
	next uint64
}

// Next returns the code for the current counter value and advances the counter.
func (a *IDAllocator) Next() string {
	id := IDCode(a.next)
	a.next++
	return id
}

// Allocated returns how many codes were handed out so far.
func (a *IDAllocator) Allocated() uint64 { return a.next }
