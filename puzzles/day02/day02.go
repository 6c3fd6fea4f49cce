// Package day02 checks reactor reports for safe level changes.
package day02

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	minStep = 1
	maxStep = 3
)

// Report is one line of levels.
type Report []int

// Parse reads one report per line.
func Parse(input string) ([]Report, error) {
	var reports []Report
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		report := make(Report, 0, len(fields))
		for _, f := range fields {
			level, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			report = append(report, level)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Safe reports whether the levels are all increasing or all decreasing
// with every step between 1 and 3.
func (r Report) Safe() bool {
	if len(r) < 2 {
		return true
	}

	increasing := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		step := r[i] - r[i-1]
		if !increasing {
			step = -step
		}
		if step < minStep || step > maxStep {
			return false
		}
	}
	return true
}

// SafeWithDampener reports whether the report is safe once at most one level is removed.
func (r Report) SafeWithDampener() bool {
	if r.Safe() {
		return true
	}
	for i := range r {
		if slices.Delete(slices.Clone(r), i, i+1).Safe() {
			return true
		}
	}
	return false
}

// Part1 counts the safe reports.
func Part1(input string) (int, error) {
	return count(input, Report.Safe)
}

// Part2 counts the reports that are safe with one level removed.
func Part2(input string) (int, error) {
	return count(input, Report.SafeWithDampener)
}

func count(input string, safe func(Report) bool) (int, error) {
	reports, err := Parse(input)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}
