package i

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Solver computes the answer to one part of one day's puzzle.
type Solver interface {
	// Day returns the puzzle day, 1 through 25.
	Day() int

	// Part returns the puzzle part, 1 or 2.
	Part() int

	// Title returns the puzzle's name.
	Title() string

	// Solve parses input and returns the answer.
	Solve(ctx context.Context, input string) (int, error)
}

// InputSource provides puzzle texts.
type InputSource interface {
	// Input returns the puzzle input for a day's part.
	Input(day, part int) (string, error)

	// Sample returns the sample input for a day's part and the answer it is known to produce.
	Sample(day, part int) (string, int, error)

	// Title returns the recorded puzzle name for day, or "" when unknown.
	Title(day int) string
}

// Solution is the outcome of one solve.
type Solution struct {
	RunID   uuid.UUID
	Day     int
	Part    int
	Title   string
	Answer  int
	Elapsed time.Duration
}

// Runner solves puzzles on request.
type Runner interface {
	// Solvers returns every available solver ordered by day then part.
	Solvers() []Solver

	// RunInput solves a day's part against input.
	RunInput(ctx context.Context, day, part int, input string) (Solution, error)
}
