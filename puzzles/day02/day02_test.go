package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestParse(t *testing.T) {
	reports, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []Report{
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{9, 7, 6, 2, 1},
		{1, 3, 2, 4, 5},
		{8, 6, 4, 4, 1},
		{1, 3, 6, 7, 9},
	}, reports)
}

func TestSafe(t *testing.T) {
	reports, err := Parse(sample)
	require.NoError(t, err)

	wantStrict := []bool{true, false, false, false, false, true}
	wantDampened := []bool{true, false, false, true, true, true}
	for i, r := range reports {
		assert.Equal(t, wantStrict[i], r.Safe(), "strict %v", r)
		assert.Equal(t, wantDampened[i], r.SafeWithDampener(), "dampened %v", r)
	}
}

func TestSafeWithDampenerEdgeCases(t *testing.T) {
	tests := []Report{
		{1, 1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5, 5},
		{1, 2, 3, 4, 5, 4},
		{1, 11, 13, 14, 15},
		{2, 1, 3, 4, 5},
		{2, 5, 3, 4, 5},
		{81, 84, 81, 80, 77, 75, 72, 69},
	}
	for _, r := range tests {
		assert.True(t, r.SafeWithDampener(), "%v", r)
	}
}

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}
