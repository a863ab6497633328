package ssdeep

import (
	"testing"

	"github.com/SymbolNotFound/gorng"
)

// randomFixture returns n deterministic pseudo-random bytes keyed on seed.
// Using a seeded generator instead of crypto/rand keeps large-input tests
// and benchmarks reproducible across runs without checking in binary
// fixtures.
func randomFixture(t *testing.T, n int, seed uint64) []byte {
	t.Helper()

	src := gorng.NewSourceSeeded(seed, uint64(n))
	out := make([]byte, n)
	for i := 0; i < n; i += 8 {
		v := src.Uint64()
		for j := 0; j < 8 && i+j < n; j++ {
			out[i+j] = byte(v >> (8 * uint(j)))
		}
	}
	return out
}
