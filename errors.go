package lzma1

import "errors"

// Sentinel errors returned by Decompress. Every failure mode maps to
// one of these (a corruption flag seen by the main loop matches both
// ErrRangeDegenerate and the catch-all ErrCorrupted); wrap with
// fmt.Errorf("%w: ...") for context and unwrap with errors.Is to
// branch on the kind.
var (
	// ErrHeaderInvalid is returned when the properties byte decodes to
	// lc, lp, or pb outside their valid ranges, or the header is
	// truncated.
	ErrHeaderInvalid = errors.New("lzma1: invalid header")

	// ErrPrimerNonZero is returned when the range-coder priming byte
	// (header offset 13) is not zero.
	ErrPrimerNonZero = errors.New("lzma1: range coder primer byte is not zero")

	// ErrRangeDegenerate is returned when the range coder's code/range
	// invariant is violated (code >= range on entry, or code == range
	// mid direct-bit decode).
	ErrRangeDegenerate = errors.New("lzma1: range coder is in a degenerate state")

	// ErrInputUnderflow is returned when the range coder needs another
	// input byte past the end of the compressed buffer.
	ErrInputUnderflow = errors.New("lzma1: compressed input truncated")

	// ErrInvalidDistance is returned when a match or rep references a
	// distance the output window has not yet accumulated.
	ErrInvalidDistance = errors.New("lzma1: match distance exceeds window contents")

	// ErrSizeMismatch is returned when the stream demands more bytes
	// than unpackSize promised, or stops short of it.
	ErrSizeMismatch = errors.New("lzma1: decompressed size does not match header")

	// ErrTrailingData is returned when the range coder's code register
	// is non-zero after an end-of-stream marker is decoded.
	ErrTrailingData = errors.New("lzma1: non-zero range coder state after end-of-stream marker")

	// ErrCorrupted is a catch-all returned once the range coder's
	// sticky corruption flag has been observed by the top-level loop.
	ErrCorrupted = errors.New("lzma1: stream is corrupted")
)
