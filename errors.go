package qoiformats

import "errors"

// Sentinel error kinds returned by Encode, Decode, and the header codec.
// Callers should match these with errors.Is; the codec always wraps them
// with additional context via fmt.Errorf("%w: ...", ...).
var (
	// ErrInvalidArgument is returned for a nil/mismatched pixel buffer, a
	// zero width or height, a channel count outside {3, 4}, a colorspace
	// byte outside {0, 1}, or a pixel count that overflows the 400M cap.
	ErrInvalidArgument = errors.New("qoiformats: invalid argument")

	// ErrInvalidHeader is returned when the magic bytes don't match "qoif"
	// or a header field otherwise violates a descriptor invariant.
	ErrInvalidHeader = errors.New("qoiformats: invalid header")

	// ErrTruncated is returned when the encoded buffer is shorter than the
	// minimum header+padding length, when the op-codes reach the padding
	// sentinel before every pixel has been produced, or when an op-code's
	// payload runs past the end of the buffer.
	ErrTruncated = errors.New("qoiformats: truncated stream")

	// ErrOutOfMemory is returned if the codec cannot allocate its output
	// buffer.
	ErrOutOfMemory = errors.New("qoiformats: out of memory")
)
