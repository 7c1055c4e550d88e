package substitution

import "Baseband/pkg/symbol"

// B8ZSEncoder counts zeros. Zeros produce no level of their own; the eighth
// zero of a run produces the whole substitution pattern 0 0 0 1 1. A
// trailing run shorter than eight produces nothing.
type B8ZSEncoder struct {
	Run symbol.RunCounter
}

func (s B8ZSEncoder) Step(b symbol.Bit) (B8ZSEncoder, []symbol.Level) {
	if b != symbol.Zero {
		return B8ZSEncoder{}, []symbol.Level{b.Level()}
	}

	s.Run = s.Run.Next()
	if s.Run == B8ZSRun {
		return B8ZSEncoder{}, b8zsPattern()
	}
	return s, nil
}

// B8ZSDecoder emits a 0 for each zero level except every fourth of a run,
// which is dropped, and a 1 for every non-zero level.
type B8ZSDecoder struct {
	Run symbol.RunCounter
}

func (s B8ZSDecoder) Step(l symbol.Level) (B8ZSDecoder, []symbol.Bit) {
	if l != 0 {
		return B8ZSDecoder{}, []symbol.Bit{symbol.One}
	}

	s.Run = s.Run.Next()
	if s.Run == B8ZSDecodeRun {
		return B8ZSDecoder{}, nil
	}
	return s, []symbol.Bit{symbol.Zero}
}

// B8ZS is bipolar eight-zero substitution.
type B8ZS struct{}

func (B8ZS) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return symbol.Run(B8ZSEncoder{}, B8ZSEncoder.Step, bits), nil
}

func (B8ZS) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Bipolar); err != nil {
		return nil, err
	}
	return symbol.Run(B8ZSDecoder{}, B8ZSDecoder.Step, levels), nil
}
