package ssdeep

// Package-wide tuning parameters. These mirror the fixed constants of the
// reference ssdeep/spamsum algorithm; none of them are configurable because
// changing them would change the wire format of produced hashes.
const (
	// minBlockSize is the smallest chunk size the ladder ever reports.
	minBlockSize = 3
	// windowSize is the rolling hash's sliding window, in bytes.
	windowSize = 7
	// spamSumLength is the maximum number of characters in one signature half.
	spamSumLength = 64
	// numBlockHashes bounds the ladder: block sizes run from minBlockSize
	// up to minBlockSize<<(numBlockHashes-1).
	numBlockHashes = 31
	// base64Chars is the digest alphabet, in emission order.
	base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// hashInit seeds every block hash context's accumulators on reset.
	hashInit = 0x28021967
	// hashPrime is the FNV-style multiplier used by the block hash update step.
	hashPrime = 0x01000193

	// defaultChunkSize is how many bytes Stream/File read per iteration
	// (spec: "reads the file in chunks of 1024 bytes").
	defaultChunkSize = 1024
)

func base64Char(pos uint32) byte {
	return base64Chars[pos%64]
}
