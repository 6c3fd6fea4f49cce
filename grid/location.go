package grid

import "fmt"

// Location represents the position of a tile in the grid.
// Col grows eastwards and Row grows southwards; (0,0) is the top-left tile.
type Location struct {
	Col int // Column index of the tile
	Row int // Row index of the tile
}

// NewLocation returns the location at the given column and row.
func NewLocation(col, row int) Location {
	return Location{Col: col, Row: row}
}

// Neighbor returns the location distance steps away from l in direction d.
// It reports false when either coordinate would become negative; upper bounds
// are left to Grid.Lookup.
func (l Location) Neighbor(d Direction, distance int) (Location, bool) {
	dCol, dRow := d.Delta()
	n := Location{Col: l.Col + dCol*distance, Row: l.Row + dRow*distance}
	if n.Col < 0 || n.Row < 0 {
		return Location{}, false
	}
	return n, true
}

// String returns the location as "(col,row)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Col, l.Row)
}
