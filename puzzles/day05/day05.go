// Package day05 checks print queue updates against page ordering rules.
package day05

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrMissingSection = errors.New("input must hold rules and updates separated by a blank line")

// RuleSet maps a page to the pages that must be printed after it.
type RuleSet map[int][]int

// Before reports whether a rule requires page a to be printed before page b.
func (rs RuleSet) Before(a, b int) bool {
	return slices.Contains(rs[a], b)
}

// Update is one ordered list of pages.
type Update []int

// Valid reports whether no page is preceded by a page that must come after it.
func (u Update) Valid(rs RuleSet) bool {
	for i, page := range u {
		for _, dependent := range rs[page] {
			if slices.Contains(u[:i], dependent) {
				return false
			}
		}
	}
	return true
}

// Middle returns the page in the middle of the update.
func (u Update) Middle() int {
	return u[(len(u)-1)/2]
}

// Reorder returns a copy of the update sorted to satisfy the rules.
func (u Update) Reorder(rs RuleSet) Update {
	sorted := slices.Clone(u)
	slices.SortStableFunc(sorted, func(a, b int) int {
		switch {
		case rs.Before(a, b):
			return -1
		case rs.Before(b, a):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Parse reads the rules section and the updates section.
func Parse(input string) (RuleSet, []Update, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rulesText, updatesText, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, ErrMissingSection
	}

	rules := make(RuleSet)
	for _, line := range strings.Split(rulesText, "\n") {
		before, after, ok := strings.Cut(line, "|")
		if !ok {
			return nil, nil, fmt.Errorf("rule %q: missing '|'", line)
		}
		page, err := strconv.Atoi(before)
		if err != nil {
			return nil, nil, fmt.Errorf("rule %q: %w", line, err)
		}
		dependent, err := strconv.Atoi(after)
		if err != nil {
			return nil, nil, fmt.Errorf("rule %q: %w", line, err)
		}
		rules[page] = append(rules[page], dependent)
	}

	var updates []Update
	for _, line := range strings.Split(updatesText, "\n") {
		var u Update
		for _, field := range strings.Split(line, ",") {
			page, err := strconv.Atoi(field)
			if err != nil {
				return nil, nil, fmt.Errorf("update %q: %w", line, err)
			}
			u = append(u, page)
		}
		updates = append(updates, u)
	}
	return rules, updates, nil
}

// Part1 sums the middle pages of the correctly ordered updates.
func Part1(input string) (int, error) {
	rules, updates, err := Parse(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, u := range updates {
		if u.Valid(rules) {
			total += u.Middle()
		}
	}
	return total, nil
}

// Part2 reorders the incorrectly ordered updates and sums their middle pages.
func Part2(input string) (int, error) {
	rules, updates, err := Parse(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, u := range updates {
		if !u.Valid(rules) {
			total += u.Reorder(rules).Middle()
		}
	}
	return total, nil
}
