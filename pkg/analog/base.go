// Package analog turns analog sample streams into codes and back: static
// PCM quantization and a one-bit delta modulator.
package analog

import "Baseband/pkg/symbol"

// Modem converts between analog samples and integer codes.
type Modem interface {
	Modulate(samples []symbol.Sample) ([]symbol.Code, error)
	Demodulate(codes []symbol.Code) ([]symbol.Sample, error)
}

func toSamples(codes []symbol.Code) []symbol.Sample {
	samples := make([]symbol.Sample, len(codes))
	for i, c := range codes {
		samples[i] = symbol.Sample(c)
	}
	return samples
}
