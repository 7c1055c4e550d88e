package linecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Baseband/pkg/symbol"
)

func TestAMIEncoderStep(t *testing.T) {
	s := NewAMIEncoder()

	s, out := s.Step(symbol.Zero)
	assert.Equal(t, []symbol.Level{-1}, out)
	assert.Equal(t, symbol.Positive, s.Register)

	s, out = s.Step(symbol.One)
	assert.Equal(t, []symbol.Level{1}, out)
	assert.Equal(t, symbol.Positive, s.Register)

	// no alternation: the register holds the literal mark
	_, out = s.Step(symbol.One)
	assert.Equal(t, []symbol.Level{1}, out)
}

func TestAMI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		encoded symbol.Levels
	}{
		{"single zero", "0", symbol.Levels{-1}},
		{"single one", "1", symbol.Levels{1}},
		{"mixed", "1001", symbol.Levels{1, -1, -1, 1}},
		{"all zeros", "0000", symbol.Levels{-1, -1, -1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := AMI{}.Encode(bits(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, levels)
			assert.NotContains(t, levels, symbol.Level(0))
		})
	}
}

func TestAMIThresholdDecodeNeverYieldsZero(t *testing.T) {
	signals := []symbol.Levels{
		{1},
		{-1},
		{1, -1, -1, 1},
		{-1, -1, -1, -1, -1, -1, -1, -1},
	}
	for _, levels := range signals {
		decoded, err := AMI{}.Decode(levels)
		require.NoError(t, err)
		assert.Len(t, decoded, len(levels))
		assert.NotContains(t, decoded, symbol.Zero)
	}
}

func TestAMIDecode(t *testing.T) {
	decoded, err := AMI{}.Decode(symbol.Levels{0, 1, -1, 0})
	require.NoError(t, err)
	assert.Equal(t, "0110", decoded.String())

	_, err = AMI{}.Decode(symbol.Levels{0, 5})
	assert.ErrorIs(t, err, symbol.ErrInvalidSymbol)
}

type recordingCodec struct {
	encoded symbol.Bits
	decoded symbol.Levels
}

func (c *recordingCodec) Encode(bits symbol.Bits) (symbol.Levels, error) {
	c.encoded = bits
	return symbol.Levels{0, 0, 0}, nil
}

func (c *recordingCodec) Decode(levels symbol.Levels) (symbol.Bits, error) {
	c.decoded = levels
	return symbol.Bits{1}, nil
}

func TestAMIScramblingReplacesCoder(t *testing.T) {
	scrambler := &recordingCodec{}
	ami := AMI{Scrambling: scrambler}

	levels, err := ami.Encode(bits(t, "0000"))
	require.NoError(t, err)
	assert.Equal(t, symbol.Levels{0, 0, 0}, levels)
	assert.Equal(t, "0000", scrambler.encoded.String())

	decoded, err := ami.Decode(symbol.Levels{1, -1})
	require.NoError(t, err)
	assert.Equal(t, "1", decoded.String())
	assert.Equal(t, symbol.Levels{1, -1}, scrambler.decoded)
}
