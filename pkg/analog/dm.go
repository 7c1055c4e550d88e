package analog

import (
	"math"

	"Baseband/pkg/symbol"
)

// DMEncoder compares each sample with the previous raw sample, not with a
// reconstructed estimate.
type DMEncoder struct {
	Previous symbol.Sample
}

func (s DMEncoder) Step(sample symbol.Sample) (DMEncoder, []symbol.Bit) {
	bit := symbol.Zero
	if sample-s.Previous > 0 {
		bit = symbol.One
	}
	return DMEncoder{Previous: sample}, []symbol.Bit{bit}
}

// DMDecoder integrates +1 for each 1 and -1 for each 0.
type DMDecoder struct {
	Accumulator symbol.Code
}

func (s DMDecoder) Step(b symbol.Bit) (DMDecoder, []symbol.Code) {
	if b == symbol.One {
		s.Accumulator++
	} else {
		s.Accumulator--
	}
	return s, []symbol.Code{s.Accumulator}
}

// DM is delta modulation with a unit step.
type DM struct{}

// Encode emits one bit per sample. Samples must be finite.
func (DM) Encode(samples []symbol.Sample) (symbol.Bits, error) {
	if err := symbol.CheckRange(samples, -math.MaxFloat64, math.MaxFloat64); err != nil {
		return nil, err
	}
	return symbol.Run(DMEncoder{}, DMEncoder.Step, samples), nil
}

// Decode returns the accumulator trace, starting with its initial 0, so the
// output is one longer than the input.
func (DM) Decode(bits symbol.Bits) ([]symbol.Code, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	return append([]symbol.Code{0}, symbol.Run(DMDecoder{}, DMDecoder.Step, bits)...), nil
}

func (dm DM) Modulate(samples []symbol.Sample) ([]symbol.Code, error) {
	bits, err := dm.Encode(samples)
	if err != nil {
		return nil, err
	}

	codes := make([]symbol.Code, len(bits))
	for i, b := range bits {
		codes[i] = symbol.Code(b)
	}
	return codes, nil
}

func (dm DM) Demodulate(codes []symbol.Code) ([]symbol.Sample, error) {
	if err := symbol.Check(codes, 0, 1); err != nil {
		return nil, err
	}

	bits := make(symbol.Bits, len(codes))
	for i, c := range codes {
		bits[i] = symbol.Bit(c)
	}

	trace, err := dm.Decode(bits)
	if err != nil {
		return nil, err
	}
	return toSamples(trace), nil
}
