// Package day03 scans corrupted memory for multiplication instructions.
package day03

import (
	"fmt"
	"regexp"
	"strconv"
)

// OpType identifies an instruction.
type OpType int

const (
	Mul OpType = iota
	Enable
	Disable
)

// Operation is one instruction recovered from memory.
type Operation struct {
	Type OpType
	X, Y int // Operands of a Mul.
}

var (
	mulPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)`)
	opPattern  = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)
)

// Scan returns every well-formed instruction in memory order.
// When withToggles is false only mul instructions are returned.
func Scan(memory string, withToggles bool) ([]Operation, error) {
	pattern := mulPattern
	if withToggles {
		pattern = opPattern
	}

	var ops []Operation
	for _, m := range pattern.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			ops = append(ops, Operation{Type: Enable})
		case "don't()":
			ops = append(ops, Operation{Type: Disable})
		default:
			x, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("operand %q: %w", m[1], err)
			}
			y, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("operand %q: %w", m[2], err)
			}
			ops = append(ops, Operation{Type: Mul, X: x, Y: y})
		}
	}
	return ops, nil
}

// Run sums the products of every enabled mul. Instructions start enabled.
func Run(ops []Operation) int {
	enabled := true
	total := 0
	for _, op := range ops {
		switch op.Type {
		case Enable:
			enabled = true
		case Disable:
			enabled = false
		case Mul:
			if enabled {
				total += op.X * op.Y
			}
		}
	}
	return total
}

// Part1 sums every mul instruction.
func Part1(input string) (int, error) {
	ops, err := Scan(input, false)
	if err != nil {
		return 0, err
	}
	return Run(ops), nil
}

// Part2 sums the mul instructions enabled by do() and don't().
func Part2(input string) (int, error) {
	ops, err := Scan(input, true)
	if err != nil {
		return 0, err
	}
	return Run(ops), nil
}
