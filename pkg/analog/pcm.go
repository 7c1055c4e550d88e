package analog

import "Baseband/pkg/symbol"

// PCMMax is the largest PCM code; samples in [0,1] map onto [0,PCMMax].
const PCMMax symbol.Code = 255

// PCM quantizes by truncation, so decoding is biased low by up to 1/255.
type PCM struct{}

func (PCM) Modulate(samples []symbol.Sample) ([]symbol.Code, error) {
	if err := symbol.CheckRange(samples, 0, 1); err != nil {
		return nil, err
	}

	codes := make([]symbol.Code, len(samples))
	for i, s := range samples {
		codes[i] = symbol.Code(float64(s) * float64(PCMMax))
	}
	return codes, nil
}

func (PCM) Demodulate(codes []symbol.Code) ([]symbol.Sample, error) {
	if err := symbol.CheckRange(codes, 0, PCMMax); err != nil {
		return nil, err
	}

	samples := make([]symbol.Sample, len(codes))
	for i, c := range codes {
		samples[i] = symbol.Sample(float64(c) / float64(PCMMax))
	}
	return samples, nil
}
