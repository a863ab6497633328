package ssdeep

import (
	"errors"
	"log"
)

// Sentinel errors returned by Compare. Callers that only want a bare score
// should treat ErrNoCommonSubstrings as 0; ErrMalformedInput and
// ErrBlockSizeParse indicate the input wasn't a hash string at all and
// should propagate.
var (
	ErrMalformedInput         = errors.New("ssdeep: hash string is not three colon-separated parts")
	ErrBlockSizeParse         = errors.New("ssdeep: block size is not a decimal integer")
	ErrIncompatibleBlockSizes = errors.New("ssdeep: block sizes are neither equal nor in a 1:2 ratio")
	ErrNoCommonSubstrings     = errors.New("ssdeep: no common 7-byte substring between signatures")
)

// warnTooManyBlocks logs the non-fatal diagnostic spec.md §7 calls for when
// the final block-size search in Digest runs past the top of the ladder.
// The hasher still proceeds, using the largest available slot.
func warnTooManyBlocks() {
	log.Printf("ssdeep: too many blocks, reporting the largest available block size")
}
