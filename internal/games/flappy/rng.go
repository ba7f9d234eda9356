package flappy

// RNG is a 31-bit linear congruential generator. The sequence is a pure
// function of the seed and the number of draws, which keeps runs reproducible
// in tests. Intermediate products are computed in uint64, so no precision is lost.
type RNG struct {
	state uint32
}

const (
	lcgMul  = 1103515245
	lcgInc  = 12345
	lcgMask = 0x7fffffff
)

// NewRNG creates a generator seeded with seed.
func NewRNG(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed reinitializes the state. Only the low 31 bits of v are used.
func (r *RNG) Seed(v int64) {
	r.state = uint32(uint64(v) & lcgMask) //#nosec G115 -- masked to 31 bits
}

// Next advances the generator and returns a value in [0, 1).
func (r *RNG) Next() float64 {
	r.state = uint32((lcgMul*uint64(r.state) + lcgInc) & lcgMask) //#nosec G115 -- masked to 31 bits
	return float64(r.state%10000) / 10000
}

// RandInt returns an integer in [lo, hi].
func (r *RNG) RandInt(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return int(r.Next()*float64(hi-lo+1)) + lo
}

// State returns the raw generator state.
func (r *RNG) State() uint32 {
	return r.state
}
