// Package day06 predicts the route of a patrolling guard.
package day06

import (
	"context"

	"github.com/beka-birhanu/advent2024/patrol"
)

// Part1 counts the distinct tiles the guard visits before leaving the floor.
func Part1(ctx context.Context, input string, opts *patrol.Options) (int, error) {
	floor, err := patrol.ParseFloor(input)
	if err != nil {
		return 0, err
	}

	p, err := patrol.New(floor, opts)
	if err != nil {
		return 0, err
	}

	if err := p.Run(ctx); err != nil {
		return 0, err
	}
	return p.CountVisited(), nil
}

// Part2 counts the tiles where one extra obstacle would trap the guard in a loop.
func Part2(ctx context.Context, input string, workers int, opts *patrol.Options) (int, error) {
	floor, err := patrol.ParseFloor(input)
	if err != nil {
		return 0, err
	}
	return patrol.CountLoopObstructions(ctx, floor, workers, opts)
}
