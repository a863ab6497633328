package ssdeep

import (
	"strconv"
	"sync"
)

var hasherPool = sync.Pool{
	New: func() any {
		return &Hasher{}
	},
}

// Hasher is the streaming context-triggered piecewise hasher. It owns a
// ladder of up to 31 block-hash contexts, indexed by block-size exponent,
// and a single rolling hash shared across all active contexts. Nothing in
// a Hasher is shared with any other Hasher: two independent instances may
// be fed on independent goroutines without coordination.
//
// A Hasher is created with New, fed via Update (any number of times, in any
// chunking), and read via Digest (any number of times; Digest does not
// invalidate further Update calls).
type Hasher struct {
	bh             [numBlockHashes]blockHashContext
	bhStart, bhEnd int
	totalSize      uint64
	roll           rollingHash
}

// New returns a Hasher ready to accept bytes. The ladder starts with a
// single active context at the smallest block size.
func New() *Hasher {
	h := hasherPool.Get().(*Hasher)
	*h = Hasher{bhStart: 0, bhEnd: 1}
	h.bh[0].reset(true)
	return h
}

// Close releases the Hasher back to an internal pool. Callers that create
// many short-lived Hashers (e.g. hashing many small files in a loop) should
// call Close when done with one; it is not required for correctness.
func (h *Hasher) Close() error {
	hasherPool.Put(h)
	return nil
}

func blockSizeAt(exp int) uint32 {
	return uint32(minBlockSize) << uint(exp)
}

// tryFork admits the next-larger block-size exponent into the active range,
// seeding it from its smaller neighbor's accumulators so its signature is
// consistent with what it would have produced had it been active all along.
func (h *Hasher) tryFork() {
	if h.bhEnd >= numBlockHashes {
		return
	}
	prev := &h.bh[h.bhEnd-1]
	next := &h.bh[h.bhEnd]
	next.h = prev.h
	if h.bhEnd != numBlockHashes-1 {
		// Edge case at the ceiling of the ladder: the last admissible slot
		// only inherits h, not halfH.
		next.halfH = prev.halfH
	}
	next.digest[0] = 0
	next.halfDigest = 0
	next.dLen = 0
	h.bhEnd++
}

// tryRetire advances bhStart by one exactly when the smallest active block
// size can no longer be the one reported by Digest.
func (h *Hasher) tryRetire() {
	if h.bhEnd-h.bhStart < 2 {
		return
	}
	if uint64(blockSizeAt(h.bhStart))*spamSumLength >= h.totalSize {
		return
	}
	if h.bh[h.bhStart+1].dLen < spamSumLength/2 {
		return
	}
	h.bhStart++
}

// engineStep advances the rolling hash and every active block-hash context
// by one byte, then processes every trigger in ascending exponent order.
func (h *Hasher) engineStep(c byte) {
	h.roll.hash(c)
	sum := h.roll.sum()

	for i := h.bhStart; i < h.bhEnd; i++ {
		h.bh[i].update(c)
	}

	for j := h.bhStart; j < h.bhEnd; j++ {
		bs := blockSizeAt(j)
		if sum%bs != bs-1 {
			break
		}

		ctx := &h.bh[j]
		if ctx.dLen == 0 {
			h.tryFork()
		}

		ctx.digest[ctx.dLen] = base64Char(ctx.h)
		ctx.halfDigest = base64Char(ctx.halfH)

		if ctx.dLen < spamSumLength-1 {
			ctx.reset(false)
		} else {
			h.tryRetire()
		}
	}
}

// Update feeds a chunk of bytes into the hasher.
func (h *Hasher) Update(p []byte) {
	h.totalSize += uint64(len(p))
	for _, c := range p {
		h.engineStep(c)
	}
}

// appendDigestChar appends c to dst, unless mode is ModeEliminateSequences
// and c would extend an existing run of three identical trailing characters
// into a run of four.
func appendDigestChar(dst []byte, c byte, mode Mode) []byte {
	if mode == ModeEliminateSequences && len(dst) >= 3 &&
		dst[len(dst)-1] == c && dst[len(dst)-2] == c && dst[len(dst)-3] == c {
		return dst
	}
	return append(dst, c)
}

// Digest assembles the "<blocksize>:<sig1>:<sig2>" string for the current
// state. It is idempotent: it only reads the ladder and the rolling hash,
// and does not prevent further Update calls from continuing to extend the
// same Hasher.
func (h *Hasher) Digest(mode Mode) string {
	bi := h.bhStart
	rollSum := h.roll.sum()

	for uint64(blockSizeAt(bi))*spamSumLength < h.totalSize {
		bi++
		if bi >= numBlockHashes {
			warnTooManyBlocks()
			bi = numBlockHashes - 1
			break
		}
	}

	for bi >= h.bhEnd {
		bi--
	}

	for bi > h.bhStart && h.bh[bi].dLen < spamSumLength/2 {
		bi--
	}

	blockSize := blockSizeAt(bi)

	out := make([]byte, 0, 2*spamSumLength+20)
	out = strconv.AppendUint(out, uint64(blockSize), 10)
	out = append(out, ':')

	ctx := &h.bh[bi]
	sig1 := bulkCopy(ctx.digest[:ctx.dLen], mode)
	if rollSum != 0 {
		sig1 = appendDigestChar(sig1, base64Char(ctx.h), mode)
	}
	out = append(out, sig1...)
	out = append(out, ':')

	if bi < h.bhEnd-1 {
		next := &h.bh[bi+1]
		n := next.dLen
		if mode != ModeDoNotTruncate && n > spamSumLength/2-1 {
			n = spamSumLength/2 - 1
		}
		sig2 := bulkCopy(next.digest[:n], mode)
		if rollSum != 0 {
			tail := next.halfH
			if mode == ModeDoNotTruncate {
				tail = next.h
			}
			sig2 = appendDigestChar(sig2, base64Char(tail), mode)
		}
		out = append(out, sig2...)
	} else if rollSum != 0 {
		out = appendDigestChar(out, base64Char(ctx.h), mode)
	}

	return string(out)
}

// bulkCopy copies a block hash's accumulated digest characters into a fresh
// slice, running them through sequence elimination first when requested.
func bulkCopy(src []byte, mode Mode) []byte {
	if mode == ModeEliminateSequences {
		return eliminateSequences(src)
	}
	dst := make([]byte, 0, len(src)+1)
	return append(dst, src...)
}
