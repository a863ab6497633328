package ssdeep

// Mode selects a variant digest-assembly behavior. The zero value, ModeNone,
// is the default algorithm described by spec.md §4.2.
type Mode int

const (
	// ModeNone assembles the digest with no special trailing-character behavior.
	ModeNone Mode = iota
	// ModeEliminateSequences suppresses a trailing character that would
	// create a run of four identical characters in either signature.
	ModeEliminateSequences
	// ModeDoNotTruncate disables sig2's 31-character truncation and uses the
	// full accumulator, rather than the half accumulator, for its trailing
	// character.
	ModeDoNotTruncate
)
