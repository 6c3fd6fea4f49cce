package day06

import (
	"context"
	"testing"

	"github.com/beka-birhanu/advent2024/patrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "....#.....\n.........#\n..........\n..#.......\n.......#..\n..........\n.#..^.....\n........#.\n#.........\n......#..."

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := Part1(ctx, sample, nil)
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	got, err = Part2(ctx, sample, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestPart1Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Part1(ctx, "..\n..", nil)
	assert.ErrorIs(t, err, patrol.ErrNoActorFound)

	_, err = Part1(ctx, ".^\n.^", nil)
	assert.ErrorIs(t, err, patrol.ErrNoActorFound)

	_, err = Part1(ctx, ".#.\n#^#\n.#.", nil)
	assert.ErrorIs(t, err, patrol.ErrCycleDetected)

	_, err = Part1(ctx, sample, &patrol.Options{MaxSteps: 3})
	assert.ErrorIs(t, err, patrol.ErrStepLimit)
}
