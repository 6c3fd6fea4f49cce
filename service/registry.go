package service

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/beka-birhanu/advent2024/service/i"
)

var (
	ErrSolverNotFound  = errors.New("no solver registered for puzzle")
	ErrDuplicateSolver = errors.New("solver already registered for puzzle")
)

type puzzleKey struct {
	day  int
	part int
}

// Registry indexes solvers by day and part.
type Registry struct {
	solvers map[puzzleKey]i.Solver
}

// NewRegistry creates a registry holding the given solvers.
func NewRegistry(solvers ...i.Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[puzzleKey]i.Solver, len(solvers))}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a solver. Each day and part may be registered once.
func (r *Registry) Register(s i.Solver) error {
	key := puzzleKey{day: s.Day(), part: s.Part()}
	if _, exists := r.solvers[key]; exists {
		return fmt.Errorf("day %d part %d: %w", key.day, key.part, ErrDuplicateSolver)
	}
	r.solvers[key] = s
	return nil
}

// Get returns the solver for a day's part.
func (r *Registry) Get(day, part int) (i.Solver, error) {
	s, ok := r.solvers[puzzleKey{day: day, part: part}]
	if !ok {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, ErrSolverNotFound)
	}
	return s, nil
}

// All returns every solver ordered by day then part.
func (r *Registry) All() []i.Solver {
	return slices.SortedFunc(maps.Values(r.solvers), func(a, b i.Solver) int {
		if c := cmp.Compare(a.Day(), b.Day()); c != 0 {
			return c
		}
		return cmp.Compare(a.Part(), b.Part())
	})
}
