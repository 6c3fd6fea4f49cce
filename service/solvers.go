package service

import (
	"context"

	"github.com/beka-birhanu/advent2024/patrol"
	"github.com/beka-birhanu/advent2024/puzzles/day01"
	"github.com/beka-birhanu/advent2024/puzzles/day02"
	"github.com/beka-birhanu/advent2024/puzzles/day03"
	"github.com/beka-birhanu/advent2024/puzzles/day04"
	"github.com/beka-birhanu/advent2024/puzzles/day05"
	"github.com/beka-birhanu/advent2024/puzzles/day06"
	"github.com/beka-birhanu/advent2024/puzzles/day07"
	"github.com/beka-birhanu/advent2024/puzzles/day09"
	"github.com/beka-birhanu/advent2024/puzzles/day11"
	"github.com/beka-birhanu/advent2024/service/i"
)

// SolverOptions tunes the solvers that support it.
type SolverOptions struct {
	Workers        int // Concurrent tasks for parallel scans; 0 means GOMAXPROCS.
	PatrolMaxSteps int // Step limit for each guard patrol; 0 means unlimited.
}

type solveFunc func(ctx context.Context, input string) (int, error)

// puzzleSolver adapts a solve function to i.Solver.
type puzzleSolver struct {
	day   int
	part  int
	title string
	solve solveFunc
}

func (s *puzzleSolver) Day() int {
	return s.day
}

func (s *puzzleSolver) Part() int {
	return s.part
}

func (s *puzzleSolver) Title() string {
	return s.title
}

func (s *puzzleSolver) Solve(ctx context.Context, input string) (int, error) {
	return s.solve(ctx, input)
}

// plain adapts a context-free part function.
func plain(f func(string) (int, error)) solveFunc {
	return func(_ context.Context, input string) (int, error) {
		return f(input)
	}
}

// Puzzles returns a solver for every implemented part. titles names each day.
func Puzzles(titles func(day int) string, opts SolverOptions) []i.Solver {
	patrolOpts := &patrol.Options{MaxSteps: max(opts.PatrolMaxSteps, 0)}

	parts := []struct {
		day   int
		part  int
		solve solveFunc
	}{
		{1, 1, plain(day01.Part1)},
		{1, 2, plain(day01.Part2)},
		{2, 1, plain(day02.Part1)},
		{2, 2, plain(day02.Part2)},
		{3, 1, plain(day03.Part1)},
		{3, 2, plain(day03.Part2)},
		{4, 1, func(ctx context.Context, input string) (int, error) {
			return day04.Part1(ctx, input, opts.Workers)
		}},
		{4, 2, plain(day04.Part2)},
		{5, 1, plain(day05.Part1)},
		{5, 2, plain(day05.Part2)},
		{6, 1, func(ctx context.Context, input string) (int, error) {
			return day06.Part1(ctx, input, patrolOpts)
		}},
		{6, 2, func(ctx context.Context, input string) (int, error) {
			return day06.Part2(ctx, input, opts.Workers, patrolOpts)
		}},
		{7, 1, plain(day07.Part1)},
		{7, 2, plain(day07.Part2)},
		{9, 1, plain(day09.Part1)},
		{9, 2, plain(day09.Part2)},
		{11, 1, plain(day11.Part1)},
		{11, 2, plain(day11.Part2)},
	}

	solvers := make([]i.Solver, 0, len(parts))
	for _, p := range parts {
		solvers = append(solvers, &puzzleSolver{
			day:   p.day,
			part:  p.part,
			title: titles(p.day),
			solve: p.solve,
		})
	}
	return solvers
}
