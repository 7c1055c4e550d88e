package substitution

import "Baseband/pkg/symbol"

// HDB3Encoder collapses every four zeros into three levels, 0 0 0 when no
// mark has been seen yet and 0 0 1 afterwards. Previous holds the literal
// value of the last mark.
type HDB3Encoder struct {
	Run      symbol.RunCounter
	Previous symbol.Bit
}

func (s HDB3Encoder) Step(b symbol.Bit) (HDB3Encoder, []symbol.Level) {
	if b != symbol.Zero {
		return HDB3Encoder{Previous: b}, []symbol.Level{b.Level()}
	}

	s.Run = s.Run.Next()
	if s.Run == HDB3Run {
		s.Run = 0
		return s, hdb3Pattern(s.Previous)
	}
	return s, nil
}

// HDB3Decoder flips Previous on every mark and emits it. Zero levels emit
// nothing until a run reaches four, which yields 0 0 0 if Previous is 1 and
// is dropped otherwise.
type HDB3Decoder struct {
	Run      symbol.RunCounter
	Previous symbol.Bit
}

func (s HDB3Decoder) Step(l symbol.Level) (HDB3Decoder, []symbol.Bit) {
	if l != 0 {
		s.Previous = s.Previous.Flip()
		s.Run = 0
		return s, []symbol.Bit{s.Previous}
	}

	s.Run = s.Run.Next()
	if s.Run < HDB3Run {
		return s, nil
	}

	s.Run = 0
	if s.Previous == symbol.Zero {
		return s, nil
	}
	return s, []symbol.Bit{symbol.Zero, symbol.Zero, symbol.Zero}
}

// HDB3 is high density bipolar of order 3.
type HDB3 struct{}

func (HDB3) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return symbol.Run(HDB3Encoder{}, HDB3Encoder.Step, bits), nil
}

func (HDB3) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if err := levels.Validate(symbol.Bipolar); err != nil {
		return nil, err
	}
	return symbol.Run(HDB3Decoder{}, HDB3Decoder.Step, levels), nil
}
