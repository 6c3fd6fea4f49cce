package patrol

import (
	"cmp"
	"slices"

	"github.com/beka-birhanu/advent2024/grid"
)

// pose is a guard position together with its heading.
type pose struct {
	loc     grid.Location
	heading grid.Direction
}

// State holds the guard's position, heading and the distinct locations it has occupied.
type State struct {
	Position grid.Location  // Current location of the guard.
	Heading  grid.Direction // Current heading of the guard.
	visited  map[grid.Location]struct{}
}

func newState(start grid.Location, heading grid.Direction) State {
	return State{
		Position: start,
		Heading:  heading,
		visited:  map[grid.Location]struct{}{start: {}},
	}
}

func (s *State) turn() {
	s.Heading = s.Heading.RotateClockwise()
}

func (s *State) advance(to grid.Location) {
	s.Position = to
	s.visited[to] = struct{}{}
}

func (s *State) pose() pose {
	return pose{loc: s.Position, heading: s.Heading}
}

// Visited returns the visited locations sorted row-major.
func (s *State) Visited() []grid.Location {
	locs := make([]grid.Location, 0, len(s.visited))
	for loc := range s.visited {
		locs = append(locs, loc)
	}
	slices.SortFunc(locs, func(a, b grid.Location) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return locs
}
