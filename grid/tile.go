package grid

// Tile represents a single classified cell of a grid.
type Tile[T any] struct {
	Kind    T        // Kind is the domain classification of the tile.
	Loc     Location // Loc is the position the tile occupies.
	Visited bool     // Visited is set once the tile has been marked visited.
}

// CellParser maps one input character to a cell classification.
// It returns an error for characters outside the alphabet of T.
type CellParser[T any] func(r rune) (T, error)
