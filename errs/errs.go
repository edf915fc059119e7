// Package errs defines the sentinel error values returned by omgrid's codec
// configuration and decode paths.
//
// Configuration errors (ErrInvalidDataType, ErrInvalidCompressionType) are
// returned only at configuration construction time; once a Config has been
// built successfully, every operation on it assumes a valid configuration.
//
// Data corruption errors (ErrOutOfBoundRead, ErrNotAnOmFile,
// ErrDeflatedSizeMismatch) name the decode-time data conditions of the wire
// error taxonomy. No function in this module returns them:
// chunk.DecompressChunk does not validate its compressed input, and a
// truncated or corrupt chunk makes it panic with an index-out-of-range
// runtime error.
//
// Programming errors (violated preconditions such as a chunk shape exceeding
// the caller-supplied array bounds) are not part of this package: they are
// contract violations detected by panics, not recoverable conditions. See
// chunk.CompressChunk / chunk.DecompressChunk.
package errs

import "errors"

var (
	// ErrInvalidDataType is returned when a DataType is unknown or
	// incompatible with the selected Compression.
	ErrInvalidDataType = errors.New("invalid data type")

	// ErrInvalidCompressionType is returned when a Compression value is
	// unknown.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrOutOfBoundRead names corrupted data whose decoding would read or
	// write outside declared bounds.
	ErrOutOfBoundRead = errors.New("corrupted data with potential out-of-bound read")

	// ErrNotAnOmFile names data that does not match the expected chunk
	// format.
	ErrNotAnOmFile = errors.New("not an om file")

	// ErrDeflatedSizeMismatch names an entropy-stage byte count that does
	// not match the declared compressed length.
	ErrDeflatedSizeMismatch = errors.New("corrupted data: deflated size does not match")
)

// Message returns a human-readable description of a sentinel error defined in
// this package, "no error occurred" for nil, or "" for any other error
// (including a sentinel wrapped with %w).
//
// This mirrors the pure string-accessor the original C implementation
// exposes over its OmError_t enum (om_error_string), giving callers a stable
// message independent of Go's default %v formatting.
func Message(err error) string {
	switch err {
	case nil:
		return "no error occurred"
	case ErrInvalidCompressionType:
		return "invalid compression type"
	case ErrInvalidDataType:
		return "invalid data type"
	case ErrOutOfBoundRead:
		return "corrupted data with potential out-of-bound read"
	case ErrNotAnOmFile:
		return "not an om file"
	case ErrDeflatedSizeMismatch:
		return "corrupted data: deflated size does not match"
	default:
		return ""
	}
}
