package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int8

func TestBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()

	levels := []level{1, -1, 0, 1}
	name := filepath.Join(dir, "levels.bin")
	require.NoError(t, WriteBinary(name, levels))
	readLevels, err := ReadBinary[level](name)
	require.NoError(t, err)
	assert.Equal(t, levels, readLevels)

	codes := []int32{0, 127, 255}
	name = filepath.Join(dir, "codes.bin")
	require.NoError(t, WriteBinary(name, codes))
	readCodes, err := ReadBinary[int32](name)
	require.NoError(t, err)
	assert.Equal(t, codes, readCodes)
}

func TestReadBinaryMissing(t *testing.T) {
	_, err := ReadBinary[int32](filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
