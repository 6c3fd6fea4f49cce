// Package day04 finds XMAS in a letter grid.
package day04

import (
	"context"
	"sync"

	"github.com/beka-birhanu/advent2024/grid"
	"golang.org/x/sync/errgroup"
)

// Letter is one cell of the word search.
type Letter rune

const word = "XMAS"

// ParseLetter accepts only the letters of XMAS.
func ParseLetter(r rune) (Letter, error) {
	switch r {
	case 'X', 'M', 'A', 'S':
		return Letter(r), nil
	default:
		return 0, grid.ErrBadCell
	}
}

// Word is the sequence of tiles spelling XMAS.
type Word []grid.Tile[Letter]

// WordSearch is a parsed puzzle.
type WordSearch struct {
	letters *grid.Grid[Letter]
}

// Parse builds a word search from the puzzle text.
func Parse(input string) (*WordSearch, error) {
	letters, err := grid.Parse(input, ParseLetter)
	if err != nil {
		return nil, err
	}
	return &WordSearch{letters: letters}, nil
}

// Len returns the number of letters.
func (ws *WordSearch) Len() int {
	return ws.letters.Len()
}

// WordsAt returns the words starting at loc, one per direction that spells XMAS.
func (ws *WordSearch) WordsAt(loc grid.Location) []Word {
	var words []Word
	for _, d := range grid.All() {
		if w, ok := ws.wordFrom(loc, d); ok {
			words = append(words, w)
		}
	}
	return words
}

func (ws *WordSearch) wordFrom(loc grid.Location, d grid.Direction) (Word, bool) {
	w := make(Word, 0, len(word))
	for i, want := range word {
		at, ok := loc.Neighbor(d, i)
		if !ok {
			return nil, false
		}
		tile, ok := ws.letters.Lookup(at)
		if !ok || tile.Kind != Letter(want) {
			return nil, false
		}
		w = append(w, tile)
	}
	return w, true
}

// Search scans every tile concurrently, at most workers at a time, and
// returns all words found. The grid is only read, so tasks share it freely.
func (ws *WordSearch) Search(ctx context.Context, workers int) ([]Word, error) {
	var (
		mu    sync.Mutex
		words []Word
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for row := 0; row < ws.letters.Height(); row++ {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			var found []Word
			for col := 0; col < ws.letters.Width(); col++ {
				found = append(found, ws.WordsAt(grid.NewLocation(col, row))...)
			}

			mu.Lock()
			words = append(words, found...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return words, nil
}

// CrossAt reports whether loc is the centre A of two diagonal MAS words.
func (ws *WordSearch) CrossAt(loc grid.Location) bool {
	centre, ok := ws.letters.Lookup(loc)
	if !ok || centre.Kind != 'A' {
		return false
	}
	return ws.diagonalMAS(loc, grid.NorthWest, grid.SouthEast) &&
		ws.diagonalMAS(loc, grid.NorthEast, grid.SouthWest)
}

func (ws *WordSearch) diagonalMAS(loc grid.Location, a, b grid.Direction) bool {
	first, ok := ws.letterAt(loc, a)
	if !ok {
		return false
	}
	second, ok := ws.letterAt(loc, b)
	if !ok {
		return false
	}
	return (first == 'M' && second == 'S') || (first == 'S' && second == 'M')
}

func (ws *WordSearch) letterAt(loc grid.Location, d grid.Direction) (Letter, bool) {
	at, ok := loc.Neighbor(d, 1)
	if !ok {
		return 0, false
	}
	tile, ok := ws.letters.Lookup(at)
	return tile.Kind, ok
}

// Part1 counts every XMAS in the grid, scanning at most workers rows at a time.
func Part1(ctx context.Context, input string, workers int) (int, error) {
	ws, err := Parse(input)
	if err != nil {
		return 0, err
	}
	words, err := ws.Search(ctx, workers)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// Part2 counts the X-MAS crosses in the grid.
func Part2(input string) (int, error) {
	ws, err := Parse(input)
	if err != nil {
		return 0, err
	}
	crosses := ws.letters.Find(func(t grid.Tile[Letter]) bool {
		return ws.CrossAt(t.Loc)
	})
	return len(crosses), nil
}
