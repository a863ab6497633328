package ssdeep

// rollingHash is the 7-byte-window rolling checksum used to find trigger
// points for the block hash ladder. All arithmetic wraps modulo 2^32, which
// is part of the algorithm's contract, not an implementation detail.
type rollingHash struct {
	h1, h2, h3 uint32
	window     [windowSize]byte
	n          uint32
}

// hash advances the window by one byte.
func (r *rollingHash) hash(c byte) {
	u := uint32(c)
	idx := r.n % windowSize
	old := r.window[idx]

	r.h2 -= r.h1
	r.h2 += windowSize * u

	r.h1 += u
	r.h1 -= uint32(old)

	r.window[idx] = c
	r.n++

	r.h3 <<= 5
	r.h3 ^= u
}

// sum returns the current rolling hash value.
func (r *rollingHash) sum() uint32 {
	return r.h1 + r.h2 + r.h3
}
