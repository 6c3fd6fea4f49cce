// Package day01 compares two lists of location IDs.
package day01

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Lists holds the left and right location ID columns.
type Lists struct {
	Left  []int
	Right []int
}

// Parse reads two whitespace separated columns of integers.
func Parse(input string) (Lists, error) {
	var lists Lists
	for i, line := range strings.Split(strings.TrimSpace(input), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Lists{}, fmt.Errorf("line %d: want 2 columns, got %d", i+1, len(fields))
		}

		left, err := strconv.Atoi(fields[0])
		if err != nil {
			return Lists{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		right, err := strconv.Atoi(fields[1])
		if err != nil {
			return Lists{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		lists.Left = append(lists.Left, left)
		lists.Right = append(lists.Right, right)
	}
	return lists, nil
}

// Distance pairs the smallest left with the smallest right and so on,
// summing the absolute differences.
func (l Lists) Distance() int {
	left := slices.Sorted(slices.Values(l.Left))
	right := slices.Sorted(slices.Values(l.Right))

	total := 0
	for i := range left {
		total += abs(left[i] - right[i])
	}
	return total
}

// Similarity sums every left value multiplied by how often it appears on the right.
func (l Lists) Similarity() int {
	counts := make(map[int]int, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}

	total := 0
	for _, v := range l.Left {
		total += v * counts[v]
	}
	return total
}

// Part1 returns the total distance between the lists.
func Part1(input string) (int, error) {
	lists, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return lists.Distance(), nil
}

// Part2 returns the similarity score of the lists.
func Part2(input string) (int, error) {
	lists, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return lists.Similarity(), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
