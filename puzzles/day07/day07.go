// Package day07 searches operator assignments that make calibration equations true.
package day07

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator combines a running result with the next input.
type Operator int

const (
	Add Operator = iota
	Mul
	Concat
)

var (
	// PartOneOperators are the operators available in part one.
	PartOneOperators = []Operator{Add, Mul}
	// PartTwoOperators adds concatenation.
	PartTwoOperators = []Operator{Add, Mul, Concat}
)

func (op Operator) apply(acc, v int) int {
	switch op {
	case Add:
		return acc + v
	case Mul:
		return acc * v
	case Concat:
		shift := 10
		for v >= shift {
			shift *= 10
		}
		return acc*shift + v
	}
	return acc
}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Concat:
		return "||"
	}
	return "?"
}

// Equation is a test value and the inputs that must produce it.
type Equation struct {
	TestValue int
	Inputs    []int
}

// ParseEquation reads "test: a b c".
func ParseEquation(line string) (Equation, error) {
	test, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return Equation{}, fmt.Errorf("equation %q: missing ': '", line)
	}

	value, err := strconv.Atoi(test)
	if err != nil {
		return Equation{}, fmt.Errorf("equation %q: %w", line, err)
	}

	var inputs []int
	for _, f := range strings.Fields(rest) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Equation{}, fmt.Errorf("equation %q: %w", line, err)
		}
		inputs = append(inputs, v)
	}
	if len(inputs) == 0 {
		return Equation{}, fmt.Errorf("equation %q: no inputs", line)
	}
	return Equation{TestValue: value, Inputs: inputs}, nil
}

// Parse reads one equation per line.
func Parse(input string) ([]Equation, error) {
	var equations []Equation
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		eq, err := ParseEquation(strings.TrimSpace(line))
		if err != nil {
			return nil, err
		}
		equations = append(equations, eq)
	}
	return equations, nil
}

// Combinations returns every sequence of length n over ops, in odometer order
// with the last position varying fastest.
func Combinations(n int, ops []Operator) [][]Operator {
	if n == 0 {
		return [][]Operator{{}}
	}

	total := 1
	for range n {
		total *= len(ops)
	}

	combos := make([][]Operator, 0, total)
	digits := make([]int, n)
	for range total {
		combo := make([]Operator, n)
		for i, d := range digits {
			combo[i] = ops[d]
		}
		combos = append(combos, combo)

		for i := n - 1; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(ops) {
				break
			}
			digits[i] = 0
		}
	}
	return combos
}

// Evaluate applies ops left to right over the inputs.
func (e Equation) Evaluate(ops []Operator) int {
	acc := e.Inputs[0]
	for i, op := range ops {
		acc = op.apply(acc, e.Inputs[i+1])
	}
	return acc
}

// Solvable reports whether some assignment of ops makes the equation true.
func (e Equation) Solvable(ops []Operator) bool {
	for _, combo := range Combinations(len(e.Inputs)-1, ops) {
		if e.Evaluate(combo) == e.TestValue {
			return true
		}
	}
	return false
}

// TotalCalibration sums the test values of the solvable equations.
func TotalCalibration(equations []Equation, ops []Operator) int {
	total := 0
	for _, eq := range equations {
		if eq.Solvable(ops) {
			total += eq.TestValue
		}
	}
	return total
}

// Part1 uses addition and multiplication.
func Part1(input string) (int, error) {
	equations, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return TotalCalibration(equations, PartOneOperators), nil
}

// Part2 adds concatenation.
func Part2(input string) (int, error) {
	equations, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return TotalCalibration(equations, PartTwoOperators), nil
}
