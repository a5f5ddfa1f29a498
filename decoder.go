// Package lzma1 decodes the classic LZMA1 compressed stream format: a
// raw LZMA range-coded stream prefixed by the fixed 13-byte header
// described in spec.md §6 (the format LZMA1 encoders historically
// produced, distinct from the .xz and .lzma2 container variants).
//
// The package exposes a single operation, Decompress, that consumes a
// fully materialized compressed buffer and returns a fully
// materialized decompressed buffer. There is no streaming variant and
// no encoder: both are explicitly out of scope (spec.md §1).
package lzma1

import "fmt"

// decoder is the top-level state machine. One instance is created per
// Decompress call and discarded on return; nothing it owns outlives
// the call.
type decoder struct {
	rc *rangeDecoder
	w  *outputWindow

	lc, lp, pb uint8
	unpackSize uint64
	sizeKnown  bool

	state                  uint32
	rep0, rep1, rep2, rep3 uint32

	isMatch    []prob // [state<<numPosBitsMax + posState]
	isRep      []prob // [state]
	isRepG0    []prob // [state]
	isRepG1    []prob // [state]
	isRepG2    []prob // [state]
	isRep0Long []prob // [state<<numPosBitsMax + posState]

	lit       *literalDecoder
	length    *lengthDecoder
	repLength *lengthDecoder
	dist      *distanceDecoder
}

func newDecoder(input []byte, p properties) (*decoder, error) {
	if len(input) < prefaceSize {
		return nil, fmt.Errorf("%w: input shorter than the range coder preface", ErrHeaderInvalid)
	}

	rc := newRangeDecoder(input[headerSize:])
	if err := rc.init(); err != nil {
		return nil, err
	}
	if rc.corrupted {
		return nil, ErrRangeDegenerate
	}

	outHint := uint64(0)
	if p.sizeKnown {
		outHint = p.unpackSize
	}

	return &decoder{
		rc:         rc,
		w:          newOutputWindow(p.dictSize, outHint),
		lc:         p.lc,
		lp:         p.lp,
		pb:         p.pb,
		unpackSize: p.unpackSize,
		sizeKnown:  p.sizeKnown,

		isMatch:    newProbs(numStates << numPosBitsMax),
		isRep:      newProbs(numStates),
		isRepG0:    newProbs(numStates),
		isRepG1:    newProbs(numStates),
		isRepG2:    newProbs(numStates),
		isRep0Long: newProbs(numStates << numPosBitsMax),

		lit:       newLiteralDecoder(p.lc, p.lp),
		length:    newLengthDecoder(),
		repLength: newLengthDecoder(),
		dist:      newDistanceDecoder(),
	}, nil
}

// run drives the main decode loop (spec.md §4.6) until the output
// target is met or an end-of-stream marker is decoded.
func (d *decoder) run() error {
	posMask := uint32(1)<<d.pb - 1

	for {
		if d.rc.corrupted {
			return fmt.Errorf("%w: %w", ErrRangeDegenerate, ErrCorrupted)
		}

		if d.sizeKnown && d.w.total == d.unpackSize {
			return nil
		}

		posState := uint32(d.w.total) & posMask
		state2 := d.state<<numPosBitsMax + posState

		bit, err := d.rc.decodeBit(&d.isMatch[state2])
		if err != nil {
			return err
		}

		if bit == 0 {
			if err := d.decodeLiteralOp(); err != nil {
				return err
			}
			continue
		}

		bit, err = d.rc.decodeBit(&d.isRep[d.state])
		if err != nil {
			return err
		}

		var length uint32
		if bit == 0 {
			done, err := d.decodeSimpleMatch(posState, &length)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		} else {
			short, err := d.decodeRepMatch(posState, state2, &length)
			if err != nil {
				return err
			}
			if short {
				continue
			}
		}

		if d.sizeKnown && uint64(length) > d.unpackSize-d.w.total {
			return ErrSizeMismatch
		}

		if err := d.w.copyMatch(d.rep0, length); err != nil {
			return err
		}
	}
}

func (d *decoder) decodeLiteralOp() error {
	b, err := d.lit.decode(d.rc, d.w, d.state, d.rep0)
	if err != nil {
		return err
	}

	d.w.put(b)
	d.state = stateAfterLiteral(d.state)
	return nil
}

// decodeSimpleMatch handles the isMatch=1, isRep=0 branch: a regular
// match against a freshly decoded distance. Returns done=true when the
// distance is the end-of-stream marker and the stream may terminate
// successfully.
func (d *decoder) decodeSimpleMatch(posState uint32, length *uint32) (bool, error) {
	d.rep3, d.rep2, d.rep1 = d.rep2, d.rep1, d.rep0

	lengthCode, err := d.length.decode(d.rc, posState)
	if err != nil {
		return false, err
	}

	d.state = stateAfterMatch(d.state)

	newDist, err := d.dist.decode(d.rc, lengthCode)
	if err != nil {
		return false, err
	}

	if newDist == eosDistance {
		if !d.rc.isFinishedOK() {
			return false, ErrTrailingData
		}
		if d.sizeKnown && d.w.total != d.unpackSize {
			return false, ErrSizeMismatch
		}
		return true, nil
	}

	if err := d.w.validateDist(newDist); err != nil {
		return false, err
	}

	d.rep0 = newDist
	*length = lengthCode + matchMinLen

	return false, nil
}

// decodeRepMatch handles the isMatch=1, isRep=1 branch: a short rep, a
// long rep0, or a promotion of rep1/rep2/rep3. Returns short=true when
// a short rep has already emitted its one byte and the main loop
// should continue without a copyMatch.
func (d *decoder) decodeRepMatch(posState, state2 uint32, length *uint32) (bool, error) {
	if d.w.isEmpty() {
		return false, ErrInvalidDistance
	}

	bit, err := d.rc.decodeBit(&d.isRepG0[d.state])
	if err != nil {
		return false, err
	}

	if bit == 0 {
		bit, err = d.rc.decodeBit(&d.isRep0Long[state2])
		if err != nil {
			return false, err
		}
		if bit == 0 {
			b, err := d.w.get(d.rep0 + 1)
			if err != nil {
				return false, err
			}
			d.w.put(b)
			d.state = stateAfterShortRep(d.state)
			return true, nil
		}
	} else {
		var dist uint32

		bit, err = d.rc.decodeBit(&d.isRepG1[d.state])
		if err != nil {
			return false, err
		}
		if bit == 0 {
			dist = d.rep1
		} else {
			bit, err = d.rc.decodeBit(&d.isRepG2[d.state])
			if err != nil {
				return false, err
			}
			if bit == 0 {
				dist = d.rep2
			} else {
				dist = d.rep3
				d.rep3 = d.rep2
			}
			d.rep2 = d.rep1
		}

		d.rep1 = d.rep0
		d.rep0 = dist
	}

	lengthCode, err := d.repLength.decode(d.rc, posState)
	if err != nil {
		return false, err
	}

	d.state = stateAfterRep(d.state)
	*length = lengthCode + matchMinLen

	return false, nil
}

// Decompress decodes a complete classic-LZMA1 stream. On success it
// returns the decompressed bytes; on failure it returns one of the
// sentinel errors in errors.go, checkable with errors.Is.
func Decompress(input []byte) ([]byte, error) {
	p, err := parseHeader(input)
	if err != nil {
		return nil, err
	}

	d, err := newDecoder(input, p)
	if err != nil {
		return nil, err
	}

	if err := d.run(); err != nil {
		return nil, err
	}

	if p.sizeKnown && uint64(len(d.w.out)) != p.unpackSize {
		return nil, ErrSizeMismatch
	}

	return d.w.out, nil
}
