package linecode

import "Baseband/pkg/symbol"

// NRZL maps 1 to level 1 and 0 to level 0.
type NRZL struct{}

func (NRZL) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}

	levels := make(symbol.Levels, len(bits))
	for i, b := range bits {
		levels[i] = b.Level()
	}
	return levels, nil
}

func (NRZL) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Binary); err != nil {
		return nil, err
	}

	bits := make(symbol.Bits, len(levels))
	for i, l := range levels {
		if l == 1 {
			bits[i] = symbol.One
		}
	}
	return bits, nil
}

// NRZIEncoder holds the NRZ-I encoder register.
//
// A 0 repeats the register, a 1 emits its negation and then loads the
// register with the bit value itself (always 1), not with the emitted level.
type NRZIEncoder struct {
	Previous symbol.Level
}

func (s NRZIEncoder) Step(b symbol.Bit) (NRZIEncoder, []symbol.Level) {
	if b == symbol.Zero {
		return s, emit(s.Previous)
	}
	return NRZIEncoder{Previous: b.Level()}, emit(-s.Previous)
}

// NRZIDecoder toggles its bit on every non-zero level.
type NRZIDecoder struct {
	Current symbol.Bit
}

func (s NRZIDecoder) Step(l symbol.Level) (NRZIDecoder, []symbol.Bit) {
	if l != 0 {
		s.Current = s.Current.Flip()
	}
	return s, emitBit(s.Current)
}

// NRZI is Non-Return-to-Zero Invert. Both registers start at 0.
type NRZI struct{}

func (NRZI) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return symbol.Run(NRZIEncoder{}, NRZIEncoder.Step, bits), nil
}

func (NRZI) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Bipolar); err != nil {
		return nil, err
	}
	return symbol.Run(NRZIDecoder{}, NRZIDecoder.Step, levels), nil
}
