package lzma1

// prob is an 11-bit adaptive estimate of P(next bit == 0), stored in
// the low bits of a uint16. Every slot starts at probInitVal (the
// midpoint) and is nudged by the range coder's 1/32 move-bits rule as
// bits are decoded against it.
type prob uint16

// newProbs returns a slice of n probability slots, each initialized to
// the midpoint.
func newProbs(n int) []prob {
	p := make([]prob, n)
	for i := range p {
		p[i] = probInitVal
	}
	return p
}
