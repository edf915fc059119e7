package chunk

import "errors"

// Structural validation errors local to Descriptor/Config construction.
// These are distinct from the wire-visible error taxonomy in package errs: they
// describe a caller-supplied shape that can never be valid (rank mismatch,
// a zero extent), not a decode-time data condition.
var (
	ErrRankMismatch    = errors.New("chunk: dimensions and chunks must have equal, non-zero length")
	ErrZeroExtent      = errors.New("chunk: dimension and chunk extents must be at least 1")
	ErrRankArgMismatch = errors.New("chunk: arrayDimensions/arrayOffset/arrayCount must match the descriptor's rank")
)
