package linecode

import "Baseband/pkg/symbol"

// AMIEncoder holds the polarity register, initially +1.
//
// A 0 emits the inverted register and leaves it alone. A 1 emits the
// register and then loads it with the bit value, so the register never
// alternates.
type AMIEncoder struct {
	Register symbol.Polarity
}

func NewAMIEncoder() AMIEncoder {
	return AMIEncoder{Register: symbol.Positive}
}

func (s AMIEncoder) Step(b symbol.Bit) (AMIEncoder, []symbol.Level) {
	if b == symbol.Zero {
		return s, emit(s.Register.Invert())
	}
	return AMIEncoder{Register: symbol.Polarity(b)}, emit(s.Register.Level())
}

// AMI is Alternate Mark Inversion. When Scrambling is set, Encode and Decode
// hand the raw stream to it instead of running the AMI coder.
type AMI struct {
	Scrambling Codec
}

func (a AMI) Encode(bits symbol.Bits) (symbol.Levels, error) {
	if a.Scrambling != nil {
		return a.Scrambling.Encode(bits)
	}

	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return symbol.Run(NewAMIEncoder(), AMIEncoder.Step, bits), nil
}

// Decode thresholds each level: 0 is a space, anything else a mark.
func (a AMI) Decode(levels symbol.Levels) (symbol.Bits, error) {
	if a.Scrambling != nil {
		return a.Scrambling.Decode(levels)
	}

	if err := levels.Validate(symbol.Bipolar); err != nil {
		return nil, err
	}

	bits := make(symbol.Bits, len(levels))
	for i, l := range levels {
		if l != 0 {
			bits[i] = symbol.One
		}
	}
	return bits, nil
}
