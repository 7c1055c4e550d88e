package linecode

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"Baseband/pkg/symbol"
)

func bits(t *testing.T, s string) symbol.Bits {
	t.Helper()
	b, err := symbol.ParseBits(s)
	require.NoError(t, err)
	return b
}

func randomBits(r *rand.Rand, n int) symbol.Bits {
	b := make(symbol.Bits, n)
	for i := range b {
		b[i] = symbol.Bit(r.Intn(2))
	}
	return b
}

func fromBytes(data []byte) symbol.Bits {
	b := make(symbol.Bits, len(data))
	for i, v := range data {
		b[i] = symbol.Bit(v & 1)
	}
	return b
}
