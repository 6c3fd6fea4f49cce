// Package day11 counts stones that split and multiply every blink.
package day11

import (
	"fmt"
	"strconv"
	"strings"
)

const multiplier = 2024

// Parse reads the space separated stone engravings.
func Parse(input string) ([]int, error) {
	var stones []int
	for _, f := range strings.Fields(input) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("stone %q: %w", f, err)
		}
		stones = append(stones, v)
	}
	return stones, nil
}

// Blink returns the stones one stone becomes after a single blink.
func Blink(stone int) []int {
	if stone == 0 {
		return []int{1}
	}

	digits := strconv.Itoa(stone)
	if len(digits)%2 == 0 {
		left, _ := strconv.Atoi(digits[:len(digits)/2])
		right, _ := strconv.Atoi(digits[len(digits)/2:])
		return []int{left, right}
	}
	return []int{stone * multiplier}
}

// BlinkAll applies one blink to every stone in order.
func BlinkAll(stones []int) []int {
	next := make([]int, 0, len(stones)*2)
	for _, s := range stones {
		next = append(next, Blink(s)...)
	}
	return next
}

// Count returns the number of stones after blinks. Order does not affect the
// count, so equal stones are grouped and processed once per blink.
func Count(stones []int, blinks int) int {
	counts := make(map[int]int, len(stones))
	for _, s := range stones {
		counts[s]++
	}

	for range blinks {
		next := make(map[int]int, len(counts)*2)
		for stone, n := range counts {
			for _, s := range Blink(stone) {
				next[s] += n
			}
		}
		counts = next
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Part1 counts stones after 25 blinks.
func Part1(input string) (int, error) {
	return solve(input, 25)
}

// Part2 counts stones after 75 blinks.
func Part2(input string) (int, error) {
	return solve(input, 75)
}

func solve(input string, blinks int) (int, error) {
	stones, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Count(stones, blinks), nil
}
