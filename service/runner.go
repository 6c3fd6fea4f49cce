package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/google/uuid"
)

const (
	defaultTimeout = time.Minute
)

var (
	ErrWrongAnswer = errors.New("answer does not match the recorded sample answer")
)

// Options configures a Runner.
type Options struct {
	Timeout time.Duration // Upper bound for a single solve.
}

// VerifyResult is the outcome of running one solver against its sample.
type VerifyResult struct {
	Day  int
	Part int
	Want int
	Got  int
	Err  error
}

// OK reports whether the solver reproduced the sample answer.
func (v VerifyResult) OK() bool {
	return v.Err == nil && v.Got == v.Want
}

// Runner looks up solvers, feeds them their input and logs every run.
// Implements i.Runner.
type Runner struct {
	registry *Registry
	inputs   i.InputSource
	logger   i.Logger
	opts     *Options
}

// NewRunner creates a runner over the registry and input source.
func NewRunner(registry *Registry, inputs i.InputSource, logger i.Logger, opts *Options) (*Runner, error) {
	if registry == nil || inputs == nil || logger == nil {
		return nil, errors.New("runner needs a registry, an input source and a logger")
	}

	if opts == nil {
		opts = &Options{Timeout: defaultTimeout}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Runner{
		registry: registry,
		inputs:   inputs,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Solvers returns every registered solver ordered by day then part.
func (r *Runner) Solvers() []i.Solver {
	return r.registry.All()
}

// Run solves a day's part against its configured input.
func (r *Runner) Run(ctx context.Context, day, part int) (i.Solution, error) {
	if _, err := r.registry.Get(day, part); err != nil {
		return i.Solution{}, err
	}

	input, err := r.inputs.Input(day, part)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Loading input for day %d: %s", day, err))
		return i.Solution{}, err
	}
	return r.RunInput(ctx, day, part, input)
}

// RunInput solves a day's part against the given input.
func (r *Runner) RunInput(ctx context.Context, day, part int, input string) (i.Solution, error) {
	solver, err := r.registry.Get(day, part)
	if err != nil {
		return i.Solution{}, err
	}

	runID := uuid.New()
	r.logger.Debug(fmt.Sprintf("Solving: run=%s day=%d part=%d bytes=%d", runID, day, part, len(input)))

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	start := time.Now()
	answer, err := solver.Solve(ctx, input)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Solve failed: run=%s day=%d part=%d: %s", runID, day, part, err))
		return i.Solution{}, fmt.Errorf("day %d part %d: %w", day, part, err)
	}

	r.logger.Info(fmt.Sprintf("Solved: run=%s day=%d part=%d answer=%d elapsed=%s", runID, day, part, answer, elapsed))
	return i.Solution{
		RunID:   runID,
		Day:     day,
		Part:    part,
		Title:   solver.Title(),
		Answer:  answer,
		Elapsed: elapsed,
	}, nil
}

// Verify runs every solver against its recorded sample. Solvers without a
// sample are skipped. The error is non-nil when any sample did not match.
func (r *Runner) Verify(ctx context.Context) ([]VerifyResult, error) {
	var (
		results []VerifyResult
		failed  int
	)

	for _, s := range r.registry.All() {
		input, want, err := r.inputs.Sample(s.Day(), s.Part())
		if err != nil {
			r.logger.Warning(fmt.Sprintf("Skipping day %d part %d: %s", s.Day(), s.Part(), err))
			continue
		}

		v := VerifyResult{Day: s.Day(), Part: s.Part(), Want: want}
		res, err := r.RunInput(ctx, s.Day(), s.Part(), input)
		v.Got, v.Err = res.Answer, err
		if v.Err == nil && v.Got != v.Want {
			v.Err = ErrWrongAnswer
		}

		if !v.OK() {
			failed++
		}
		results = append(results, v)
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d samples failed: %w", failed, len(results), ErrWrongAnswer)
	}
	return results, nil
}
