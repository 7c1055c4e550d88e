// Package substitution implements the zero-run substitution codes B8ZS and
// HDB3. A run of zeros is counted and, once complete, replaced by a short
// fixed pattern, so the encoded signal is not one level per bit.
//
// Both codecs satisfy linecode.Codec and can stand in for the AMI coder when
// scrambling is requested.
package substitution

import "Baseband/pkg/symbol"

const (
	// B8ZSRun is the zero run that B8ZS replaces.
	B8ZSRun symbol.RunCounter = 8
	// B8ZSDecodeRun is the zero run after which the B8ZS decoder drops a level.
	B8ZSDecodeRun symbol.RunCounter = 4
	// HDB3Run is the zero run that HDB3 replaces, in both directions.
	HDB3Run symbol.RunCounter = 4
)

func b8zsPattern() []symbol.Level {
	return []symbol.Level{0, 0, 0, 1, 1}
}

func hdb3Pattern(previous symbol.Bit) []symbol.Level {
	return []symbol.Level{0, 0, previous.Level()}
}
