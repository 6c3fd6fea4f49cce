package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "2333133121414131402\n"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12345", "0..111....22222"},
		{"2333133121414131402", "00...111...2...333.44.5555.6666.777.888899"},
	}

	for _, tt := range tests {
		disk, err := Parse(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, disk.String())
	}

	_, err := Parse("12a4")
	assert.Error(t, err)
}

func TestCompactBlocks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12345", "022111222......"},
		{"2333133121414131402", "0099811188827773336446555566.............."},
	}

	for _, tt := range tests {
		disk, err := Parse(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, disk.CompactBlocks().String())
	}
}

func TestCompactFiles(t *testing.T) {
	disk, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "00992111777.44.333....5555.6666.....8888..", disk.CompactFiles().String())
}

func TestChecksum(t *testing.T) {
	disk, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 1928, disk.CompactBlocks().Checksum())
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 1928, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2858, got)
}
