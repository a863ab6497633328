package ssdeep

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var digestFormat = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9+/]{0,64}:[A-Za-z0-9+/]{0,64}$`)

func TestDigestMatchesWireFormat(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("x"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		make([]byte, 10000),
	}
	for i := range inputs[3] {
		inputs[3][i] = byte(i % 251)
	}

	for _, in := range inputs {
		hash, err := Bytes(in)
		require.NoError(t, err)
		require.Regexp(t, digestFormat, hash, "digest for %d bytes did not match wire format", len(in))
	}
}

func TestReportedBlockSizeIsAPowerOfTwoTimesMinBlockSize(t *testing.T) {
	data := make([]byte, 500000)
	for i := range data {
		data[i] = byte(i * 7 % 256)
	}
	hash, err := Bytes(data)
	require.NoError(t, err)

	parts, err := parseHash(hash)
	require.NoError(t, err)

	bs := uint32(parts.blockSize)
	require.GreaterOrEqual(t, bs, uint32(minBlockSize))
	found := false
	for i := 0; i < numBlockHashes; i++ {
		if blockSizeAt(i) == bs {
			found = true
			break
		}
	}
	require.True(t, found, "block size %d is not minBlockSize*2^k for k in [0,%d)", bs, numBlockHashes)
}

func TestCompareIdenticalHashIsAlways100(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog, repeated a few times to grow the signature a bit")
	hash, err := Bytes(data)
	require.NoError(t, err)

	score, err := Compare(hash, hash)
	require.NoError(t, err)
	require.Equal(t, 100, score)
}

func TestCompareIsSymmetric(t *testing.T) {
	h1, err := Bytes([]byte("The quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)
	h2, err := Bytes([]byte("The quick brown fox jumps over the lazy dog!"))
	require.NoError(t, err)

	s12, err := Compare(h1, h2)
	require.NoError(t, err)
	s21, err := Compare(h2, h1)
	require.NoError(t, err)
	require.Equal(t, s12, s21)
}

func TestEliminateSequencesIsIdempotent(t *testing.T) {
	in := []byte("aaaaabbbbbbccccccccdef")
	once := eliminateSequences(in)
	twice := eliminateSequences(once)
	require.Equal(t, once, twice)
}

func TestForkSeedsFromSmallerNeighbor(t *testing.T) {
	// Feed enough distinct data to force at least one fork, one byte at a
	// time. Whenever a step admits a new context, check that it was seeded
	// with a copy of its predecessor's accumulator state at the moment of the
	// fork: directly if it has not triggered yet, or through the first digest
	// character it emitted if it triggered in the same step.
	h := New()
	defer h.Close()

	checked := 0
	for i := 0; i < 20000; i++ {
		c := byte(i % 256)
		end := h.bhEnd
		wantH := fnvStep(h.bh[end-1].h, c)
		wantHalfH := fnvStep(h.bh[end-1].halfH, c)
		h.Update([]byte{c})
		if h.bhEnd > end {
			next := &h.bh[end]
			if next.dLen == 0 {
				require.Equal(t, wantH, next.h)
				if end != numBlockHashes-1 {
					require.Equal(t, wantHalfH, next.halfH)
				}
			} else {
				require.Equal(t, base64Char(wantH), next.digest[0])
			}
			checked++
		}
	}

	require.Greater(t, h.bhEnd, 1, "expected at least one fork to have occurred")
	require.Greater(t, checked, 0, "expected at least one fork to be checked")
}

func TestSpecScenario1CompareKnownHashes(t *testing.T) {
	a := "96:U57GjXnLt9co6pZwvLhJluvrszNgMFwO6MFG8SvkpjTWf:Hj3BeoEcNJ0TspgIG8SvkpjTg"
	b := "96:U57GjXnLt9co6pZwvLhJluvrs1eRTxYARdEallia:Hj3BeoEcNJ0TsI9xYeia3R"
	score, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 63, score)
}

func TestSpecScenario3CompareUnrelatedHashes(t *testing.T) {
	a := "3072:oQGiMXTMkux9BPSd0n4bmzwuy+WAAux3i8:op1XTsbBBnnU8nAu48"
	b := "3072:zszq392p8xWp9+fbhBpmLOCeTFvm7RAkEmq8RPFc21xgpYn9R:Agse0Yb//hu7RAkc87go9"
	score, err := Compare(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func TestSpecScenario2EmptyStringIsMalformed(t *testing.T) {
	_, err := Compare("", "")
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestBytesOfEmptyDataProducesWellFormedHash(t *testing.T) {
	hash, err := Bytes(nil)
	require.NoError(t, err)
	require.Regexp(t, digestFormat, hash)
}
