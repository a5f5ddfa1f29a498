package lzma1

// lengthDecoder decodes match lengths in [2, 273] as a length code in
// [0, 271] (the caller adds matchMinLen). Two independent instances
// exist at the top level: one for regular matches, one for reps.
type lengthDecoder struct {
	choice1 prob
	choice2 prob

	low  []*bitTreeDecoder // 1<<numPosBitsMax trees of 3 bits
	mid  []*bitTreeDecoder // 1<<numPosBitsMax trees of 3 bits
	high *bitTreeDecoder   // one tree of 8 bits
}

func newLengthDecoder() *lengthDecoder {
	d := &lengthDecoder{
		choice1: probInitVal,
		choice2: probInitVal,
		low:     make([]*bitTreeDecoder, 1<<numPosBitsMax),
		mid:     make([]*bitTreeDecoder, 1<<numPosBitsMax),
		high:    newBitTreeDecoder(8),
	}

	for i := range d.low {
		d.low[i] = newBitTreeDecoder(3)
		d.mid[i] = newBitTreeDecoder(3)
	}

	return d
}

func (d *lengthDecoder) decode(rc *rangeDecoder, posState uint32) (uint32, error) {
	bit, err := rc.decodeBit(&d.choice1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return d.low[posState].decode(rc)
	}

	bit, err = rc.decodeBit(&d.choice2)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		v, err := d.mid[posState].decode(rc)
		if err != nil {
			return 0, err
		}
		return 8 + v, nil
	}

	v, err := d.high.decode(rc)
	if err != nil {
		return 0, err
	}
	return 16 + v, nil
}
