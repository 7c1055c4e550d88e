package linecode

import "Baseband/pkg/symbol"

// Manchester emits two levels per bit: the bit, then its complement.
type Manchester struct{}

func (Manchester) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}

	levels := make(symbol.Levels, 0, 2*len(bits))
	for _, b := range bits {
		levels = append(levels, b.Level(), b.Flip().Level())
	}
	return levels, nil
}

// ManchesterDecoder keeps the first level of each pair.
type ManchesterDecoder struct {
	Odd bool // next level is the second half of a pair
}

func (s ManchesterDecoder) Step(l symbol.Level) (ManchesterDecoder, []symbol.Bit) {
	if s.Odd {
		return ManchesterDecoder{}, nil
	}
	return ManchesterDecoder{Odd: true}, emitBit(symbol.Bit(l))
}

func (Manchester) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Binary); err != nil {
		return nil, err
	}
	return symbol.Run(ManchesterDecoder{}, ManchesterDecoder.Step, levels), nil
}

// DifferentialManchesterEncoder compares each bit with a reference bit,
// initially 1. An equal bit emits 0; a different bit emits 1 and becomes
// the new reference. One level is emitted per bit.
type DifferentialManchesterEncoder struct {
	Reference symbol.Bit
}

func NewDifferentialManchesterEncoder() DifferentialManchesterEncoder {
	return DifferentialManchesterEncoder{Reference: symbol.One}
}

func (s DifferentialManchesterEncoder) Step(b symbol.Bit) (DifferentialManchesterEncoder, []symbol.Level) {
	if b == s.Reference {
		return s, emit(0)
	}
	return DifferentialManchesterEncoder{Reference: b}, emit(1)
}

// DifferentialManchesterDecoder reads levels in pairs. A 1 in the first
// half of a pair toggles the current bit, which is emitted once per pair.
type DifferentialManchesterDecoder struct {
	Current symbol.Bit
	Odd     bool
}

func (s DifferentialManchesterDecoder) Step(l symbol.Level) (DifferentialManchesterDecoder, []symbol.Bit) {
	if s.Odd {
		s.Odd = false
		return s, nil
	}
	if l == 1 {
		s.Current = s.Current.Flip()
	}
	s.Odd = true
	return s, emitBit(s.Current)
}

// DifferentialManchester pairs a one-level-per-bit encoder with a
// two-level-per-bit decoder; the two do not invert each other.
type DifferentialManchester struct{}

func (DifferentialManchester) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return symbol.Run(NewDifferentialManchesterEncoder(), DifferentialManchesterEncoder.Step, bits), nil
}

func (DifferentialManchester) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Binary); err != nil {
		return nil, err
	}
	return symbol.Run(DifferentialManchesterDecoder{}, DifferentialManchesterDecoder.Step, levels), nil
}
