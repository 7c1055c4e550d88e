package symbol

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Bits
		index    int
	}{
		{"empty", "", Bits{}, -1},
		{"single one", "1", Bits{One}, -1},
		{"mixed", "101001", Bits{1, 0, 1, 0, 0, 1}, -1},
		{"letter", "10a1", nil, 2},
		{"space", "1 0", nil, 1},
		{"two", "2", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := ParseBits(tt.input)
			if tt.index < 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, bits)
				assert.Equal(t, tt.input, bits.String())
				return
			}
			require.ErrorIs(t, err, ErrInvalidSymbol)
			assert.Nil(t, bits)
			var symErr ErrSymbol
			require.True(t, errors.As(err, &symErr))
			assert.Equal(t, tt.index, symErr.Index)
		})
	}
}

func TestBitsValidate(t *testing.T) {
	assert.NoError(t, Bits{0, 1, 1}.Validate())
	assert.ErrorIs(t, Bits{0, 3}.Validate(), ErrInvalidSymbol)
}

func TestLevelsValidate(t *testing.T) {
	assert.NoError(t, Levels{-1, 0, 1}.Validate(Bipolar))
	assert.NoError(t, Levels{}.Validate(Binary))

	err := Levels{0, 1, -1}.Validate(Binary)
	require.ErrorIs(t, err, ErrInvalidSymbol)
	var symErr ErrSymbol
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, 2, symErr.Index)
	assert.Equal(t, "-1", symErr.Symbol)
	assert.Equal(t, "{0,1}", symErr.Alphabet)
}

func TestCheckRange(t *testing.T) {
	assert.NoError(t, CheckRange([]Sample{0, 0.5, 1}, 0, 1))
	assert.ErrorIs(t, CheckRange([]Sample{0.2, 1.01}, 0, 1), ErrInvalidSymbol)
	assert.ErrorIs(t, CheckRange([]Sample{Sample(math.NaN())}, 0, 1), ErrInvalidSymbol)
	assert.ErrorIs(t, CheckRange([]Code{0, 256}, 0, 255), ErrInvalidSymbol)
}

func TestParseSamples(t *testing.T) {
	samples, err := ParseSamples(" 0.1 0.5\t1 ")
	require.NoError(t, err)
	assert.Equal(t, []Sample{0.1, 0.5, 1}, samples)

	_, err = ParseSamples("0.1 x")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestRegisters(t *testing.T) {
	assert.Equal(t, Level(-1), Positive.Invert())
	assert.Equal(t, Level(1), Negative.Invert())
	assert.Equal(t, Level(1), Positive.Level())
	assert.Equal(t, One, Zero.Flip())
	assert.Equal(t, RunCounter(3), RunCounter(2).Next())
}

func TestRun(t *testing.T) {
	// emits the running count of ones after every second input
	type counter struct {
		seen, ones int
	}
	step := func(s counter, b Bit) (counter, []int) {
		s.seen++
		if b == One {
			s.ones++
		}
		if s.seen%2 == 0 {
			return s, []int{s.ones}
		}
		return s, nil
	}

	bits := Bits{1, 1, 0, 1, 1}
	assert.Equal(t, []int{2, 3}, Run(counter{}, step, bits))
	// fresh state every call
	assert.Equal(t, []int{2, 3}, Run(counter{}, step, bits))
	assert.Empty(t, Run(counter{}, step, Bits{}))
}
