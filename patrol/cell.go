package patrol

import (
	"fmt"

	"github.com/beka-birhanu/advent2024/grid"
)

// Kind classifies a floor cell.
type Kind int

const (
	Empty Kind = iota
	Obstacle
	Guard
	Visited
)

// Cell is the classification of one floor tile. Heading is only meaningful for Guard cells.
type Cell struct {
	Kind    Kind
	Heading grid.Direction
}

var (
	glyphs = map[rune]Cell{
		'.': {Kind: Empty},
		'#': {Kind: Obstacle},
		'X': {Kind: Visited},
		'^': {Kind: Guard, Heading: grid.North},
		'>': {Kind: Guard, Heading: grid.East},
		'v': {Kind: Guard, Heading: grid.South},
		'<': {Kind: Guard, Heading: grid.West},
	}

	guardGlyphs = map[grid.Direction]rune{
		grid.North: '^',
		grid.East:  '>',
		grid.South: 'v',
		grid.West:  '<',
	}
)

// ParseCell maps a floor character to its cell.
func ParseCell(r rune) (Cell, error) {
	c, ok := glyphs[r]
	if !ok {
		return Cell{}, grid.ErrBadCell
	}
	return c, nil
}

// ParseFloor parses a floor plan into a grid of cells.
func ParseFloor(text string) (*grid.Grid[Cell], error) {
	floor, err := grid.Parse(text, ParseCell)
	if err != nil {
		return nil, fmt.Errorf("parsing floor: %w", err)
	}
	return floor, nil
}

// Glyph returns the character a tile is drawn with.
func Glyph(t grid.Tile[Cell]) rune {
	switch t.Kind.Kind {
	case Obstacle:
		return '#'
	case Visited:
		return 'X'
	case Guard:
		if r, ok := guardGlyphs[t.Kind.Heading]; ok {
			return r
		}
	}
	return '.'
}

func (c Cell) walkable() bool {
	return c.Kind != Obstacle
}
