package registry

import (
	"Baseband/pkg/analog"
	"Baseband/pkg/async"
	"Baseband/pkg/linecode"
	"Baseband/pkg/symbol"
)

// EncodeAll encodes independent streams concurrently. Results are in input
// order; if any stream fails the earliest failure is returned.
func EncodeAll(codec linecode.Codec, streams []symbol.Bits) ([]symbol.Levels, error) {
	jobs := make([]<-chan async.Result[symbol.Levels], len(streams))
	for i, bits := range streams {
		jobs[i] = async.Attempt(func() (symbol.Levels, error) {
			return codec.Encode(bits)
		})
	}
	return async.Collect(jobs...)
}

// DecodeAll is EncodeAll in the other direction.
func DecodeAll(codec linecode.Codec, signals []symbol.Levels) ([]symbol.Bits, error) {
	jobs := make([]<-chan async.Result[symbol.Bits], len(signals))
	for i, levels := range signals {
		jobs[i] = async.Attempt(func() (symbol.Bits, error) {
			return codec.Decode(levels)
		})
	}
	return async.Collect(jobs...)
}

// ModulateAll modulates independent sample streams concurrently.
func ModulateAll(modem analog.Modem, streams [][]symbol.Sample) ([][]symbol.Code, error) {
	jobs := make([]<-chan async.Result[[]symbol.Code], len(streams))
	for i, samples := range streams {
		jobs[i] = async.Attempt(func() ([]symbol.Code, error) {
			return modem.Modulate(samples)
		})
	}
	return async.Collect(jobs...)
}
