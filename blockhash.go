package ssdeep

// blockHashContext is one rung of the hasher's ladder: a non-rolling
// FNV-style accumulator that emits one base64 digest character per trigger,
// plus a paired "half" accumulator that tracks the would-be terminator of a
// half-length signature.
type blockHashContext struct {
	h          uint32
	halfH      uint32
	digest     [spamSumLength]byte
	halfDigest byte
	dLen       int
}

// reset reinitializes the context's accumulators after emitting a digest
// character. init is true only for the very first context at hasher
// creation time, where no character has been emitted yet.
func (b *blockHashContext) reset(init bool) {
	if !init {
		b.dLen++
	}
	b.digest[b.dLen] = 0
	b.h = hashInit
	if b.dLen < spamSumLength/2 {
		b.halfH = hashInit
		b.halfDigest = 0
	}
}

// update folds one byte into both the full and half accumulators.
func (b *blockHashContext) update(c byte) {
	b.h = fnvStep(b.h, c)
	b.halfH = fnvStep(b.halfH, c)
}

func fnvStep(h uint32, c byte) uint32 {
	return (h * hashPrime) ^ uint32(c)
}
