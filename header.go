package lzma1

import "fmt"

// unpackSizeUnknown is the sentinel meaning "terminate on an explicit
// end-of-stream marker" rather than a known byte count.
const unpackSizeUnknown = ^uint64(0)

// properties holds the header-derived decode parameters (spec.md §3,
// §6).
type properties struct {
	lc, lp, pb uint8
	dictSize   uint32
	unpackSize uint64
	sizeKnown  bool
}

// parseHeader decodes the fixed 13-byte header at the front of input.
// The properties byte packs (lc, lp, pb) as ((pb*5)+lp)*9 + lc; this
// uses the canonical unpacking (pb = p/45; lp = (p%45)/9; lc =
// (p%45)%9), not either of the ambiguous variants the original source
// shipped.
func parseHeader(input []byte) (properties, error) {
	if len(input) < headerSize {
		return properties{}, fmt.Errorf("%w: header truncated, got %d bytes", ErrHeaderInvalid, len(input))
	}

	p := input[0]
	if p >= 9*5*5 {
		return properties{}, fmt.Errorf("%w: properties byte %d out of range", ErrHeaderInvalid, p)
	}

	props := properties{
		pb: p / 45,
		lp: (p % 45) / 9,
		lc: (p % 45) % 9,
	}

	var dictSize uint32
	for i := 0; i < 4; i++ {
		dictSize |= uint32(input[1+i]) << (8 * i)
	}
	if dictSize < dictSizeMin {
		dictSize = dictSizeMin
	}
	props.dictSize = dictSize

	var unpackSize uint64
	for i := 0; i < 8; i++ {
		unpackSize |= uint64(input[5+i]) << (8 * i)
	}
	props.unpackSize = unpackSize
	props.sizeKnown = unpackSize != unpackSizeUnknown

	return props, nil
}
