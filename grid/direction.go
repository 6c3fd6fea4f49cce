package grid

// Direction is a compass heading. Values are ordered clockwise starting at North.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	directionCount = 8
)

var (
	cardinals = []Direction{North, East, South, West}
	all       = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

	deltas = map[Direction]Location{
		North:     {Col: 0, Row: -1},
		NorthEast: {Col: 1, Row: -1},
		East:      {Col: 1, Row: 0},
		SouthEast: {Col: 1, Row: 1},
		South:     {Col: 0, Row: 1},
		SouthWest: {Col: -1, Row: 1},
		West:      {Col: -1, Row: 0},
		NorthWest: {Col: -1, Row: -1},
	}

	names = map[Direction]string{
		North:     "North",
		NorthEast: "NorthEast",
		East:      "East",
		SouthEast: "SouthEast",
		South:     "South",
		SouthWest: "SouthWest",
		West:      "West",
		NorthWest: "NorthWest",
	}
)

// Cardinals returns the four cardinal headings in clockwise order.
func Cardinals() []Direction {
	return append([]Direction(nil), cardinals...)
}

// All returns all eight headings in clockwise order.
func All() []Direction {
	return append([]Direction(nil), all...)
}

// Delta returns the column and row offsets of a single step in direction d.
// Unknown directions do not move.
func (d Direction) Delta() (dCol, dRow int) {
	delta := deltas[d]
	return delta.Col, delta.Row
}

// RotateClockwise turns d a quarter turn to the right (North -> East -> South -> West -> North).
func (d Direction) RotateClockwise() Direction {
	return (d + 2) % directionCount
}

// IsValid reports whether d is one of the eight compass headings.
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return "Unknown"
}
