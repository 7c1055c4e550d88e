// Package linecode implements the bit-memory line codes (NRZ-L, NRZ-I,
// Manchester, Differential Manchester) and the bipolar AMI code.
//
// Every scheme with memory is written as an explicit state type whose Step
// method maps (state, symbol) to (next state, emitted symbols). Encode and
// Decode start from the scheme's initial state on each call, so no state
// survives between calls.
package linecode

import "Baseband/pkg/symbol"

// Codec is a line code: a bit stream to signal levels and back.
type Codec interface {
	Encode(bits symbol.Bits) (symbol.Levels, error)
	Decode(levels symbol.Levels) (symbol.Bits, error)
}

func emit(l symbol.Level) []symbol.Level {
	return []symbol.Level{l}
}

func emitBit(b symbol.Bit) []symbol.Bit {
	return []symbol.Bit{b}
}
