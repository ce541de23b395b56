package rain

// Mix32 advances a 32-bit state with a multiply-xor-shift avalanche
// (lowbias32 constants). Pure function: same input, same output. It is a
// bijection on uint32, so repeated application never shrinks the state space.
// Zero is a fixed point; Rand32 keeps state away from it.
func Mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Rand32 is the small deterministic generator each drop owns. No allocation,
// no failure mode.
type Rand32 struct {
	state uint32
}

func NewRand32(seed uint32) Rand32 {
	if seed == 0 {
		seed = 1
	}
	return Rand32{state: seed}
}

func (r *Rand32) Next() uint32 {
	r.state = Mix32(r.state)
	return r.state
}

// State exposes the current value without stepping, for glyph derivation
func (r *Rand32) State() uint32 {
	return r.state
}

func (r *Rand32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint32(n))
}

// Byte returns the low byte of the next draw, for out-of-256 chance rolls
func (r *Rand32) Byte() byte {
	return byte(r.Next())
}

// IntRange returns a value in [lo, hi] inclusive
func (r *Rand32) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
