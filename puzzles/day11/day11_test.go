package day11

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	stones, err := Parse("0 1 10 99 999\n")
	require.NoError(t, err)
	assert.Len(t, stones, 5)

	_, err = Parse("1 two")
	assert.Error(t, err)
}

func TestBlink(t *testing.T) {
	tests := []struct {
		stone int
		want  []int
	}{
		{0, []int{1}},
		{1, []int{2024}},
		{10, []int{1, 0}},
		{99, []int{9, 9}},
		{999, []int{2021976}},
		{1000, []int{10, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Blink(tt.stone), "stone %d", tt.stone)
	}
}

func TestBlinkAll(t *testing.T) {
	assert.Equal(t, []int{1, 2024, 1, 0, 9, 9, 2021976}, BlinkAll([]int{0, 1, 10, 99, 999}))

	stones := []int{125, 17}
	stones = BlinkAll(stones)
	assert.Equal(t, []int{253000, 1, 7}, stones)
	stones = BlinkAll(stones)
	assert.Equal(t, []int{253, 0, 2024, 14168}, stones)
}

func TestCount(t *testing.T) {
	tests := []struct {
		blinks int
		want   int
	}{
		{1, 3},
		{6, 22},
		{25, 55312},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Count([]int{125, 17}, tt.blinks), "blinks %d", tt.blinks)
	}
}

func TestParts(t *testing.T) {
	got, err := Part1("125 17")
	require.NoError(t, err)
	assert.Equal(t, 55312, got)

	got, err = Part2("125 17")
	require.NoError(t, err)
	assert.Equal(t, 65601038650482, got)
}
