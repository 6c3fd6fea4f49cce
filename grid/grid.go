/*
Package grid provides a generic rectangular grid of classified tiles.

A Grid is parsed once from line-oriented text where every character maps to a
cell classification through a CellParser. Tiles are addressed by Location and
are only ever mutated through the grid itself (MarkVisited, Set), so callers
never hold a reference into the grid's storage.

Out-of-bounds is not an error: Lookup and Location.Neighbor report absence
with a boolean and callers treat it as a normal outcome.
*/
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadCell     = errors.New("character outside the cell alphabet")
	ErrRaggedRows  = errors.New("rows have different lengths")
	ErrEmptyGrid   = errors.New("grid has no rows")
	ErrOutOfBounds = errors.New("location is out of the grid")
)

// ParseError reports a character the cell parser rejected.
type ParseError struct {
	Loc  Location // Loc is where the character was found.
	Char rune     // Char is the rejected character.
	Err  error    // Err is the error returned by the cell parser.
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q at %s: %v", e.Char, e.Loc, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Grid is a rectangular collection of tiles keyed by Location.
type Grid[T any] struct {
	width  int         // Width of the grid (number of columns)
	height int         // Height of the grid (number of rows)
	tiles  [][]Tile[T] // tiles indexed by row then column
}

// Parse builds a grid from text, one row per non-empty line.
// Every row must have the same number of characters.
func Parse[T any](text string, parse CellParser[T]) (*Grid[T], error) {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len(rows[0])
	tiles := make([][]Tile[T], len(rows))
	for row, chars := range rows {
		if len(chars) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", row, len(chars), width, ErrRaggedRows)
		}

		tiles[row] = make([]Tile[T], width)
		for col, char := range chars {
			loc := Location{Col: col, Row: row}
			kind, err := parse(char)
			if err != nil {
				return nil, &ParseError{Loc: loc, Char: char, Err: err}
			}
			tiles[row][col] = Tile[T]{Kind: kind, Loc: loc}
		}
	}

	return &Grid[T]{
		width:  width,
		height: len(rows),
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the number of tiles.
func (g *Grid[T]) Len() int {
	return g.width * g.height
}

// InBound reports whether loc addresses a tile of the grid.
func (g *Grid[T]) InBound(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.height && loc.Col >= 0 && loc.Col < g.width
}

// Lookup returns the tile at loc, or false when loc is outside the grid.
func (g *Grid[T]) Lookup(loc Location) (Tile[T], bool) {
	if !g.InBound(loc) {
		return Tile[T]{}, false
	}
	return g.tiles[loc.Row][loc.Col], true
}

// MarkVisited reclassifies the tile at loc as kind and sets its visited marker.
// Marking an already visited tile is a no-op apart from the reclassification.
func (g *Grid[T]) MarkVisited(loc Location, kind T) error {
	if !g.InBound(loc) {
		return fmt.Errorf("marking %s: %w", loc, ErrOutOfBounds)
	}
	g.tiles[loc.Row][loc.Col].Kind = kind
	g.tiles[loc.Row][loc.Col].Visited = true
	return nil
}

// Set replaces the classification of the tile at loc, keeping its visited marker.
func (g *Grid[T]) Set(loc Location, kind T) error {
	if !g.InBound(loc) {
		return fmt.Errorf("setting %s: %w", loc, ErrOutOfBounds)
	}
	g.tiles[loc.Row][loc.Col].Kind = kind
	return nil
}

// Tiles returns a row-major copy of every tile.
func (g *Grid[T]) Tiles() []Tile[T] {
	tiles := make([]Tile[T], 0, g.Len())
	for _, row := range g.tiles {
		tiles = append(tiles, row...)
	}
	return tiles
}

// Find returns, in row-major order, the tiles matching pred.
func (g *Grid[T]) Find(pred func(Tile[T]) bool) []Tile[T] {
	var found []Tile[T]
	for _, row := range g.tiles {
		for _, tile := range row {
			if pred(tile) {
				found = append(found, tile)
			}
		}
	}
	return found
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	tiles := make([][]Tile[T], len(g.tiles))
	for i, row := range g.tiles {
		tiles[i] = append([]Tile[T](nil), row...)
	}
	return &Grid[T]{
		width:  g.width,
		height: g.height,
		tiles:  tiles,
	}
}

// Render provides a textual representation of the grid, one line per row.
func (g *Grid[T]) Render(format func(Tile[T]) rune) string {
	var b strings.Builder
	b.Grow(g.Len() + g.height)
	for _, row := range g.tiles {
		for _, tile := range row {
			b.WriteRune(format(tile))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
