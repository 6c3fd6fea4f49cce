/*
Package patrol simulates a guard walking a floor plan.

The guard starts on the single guard tile of the floor and repeatedly steps one
tile along its heading. When the tile ahead is an obstacle it turns a quarter
turn clockwise in place instead of moving. The patrol ends when the next step
would leave the floor; the number of distinct tiles visited is the answer.

A guard that returns to a position it already held with the same heading will
walk the same loop forever; Run reports this as ErrCycleDetected.
*/
package patrol

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/advent2024/grid"
)

// Patrol-related errors.
var (
	ErrNoActorFound  = errors.New("floor must hold exactly one guard")
	ErrCycleDetected = errors.New("guard is walking in a loop")
	ErrStepLimit     = errors.New("step limit reached")
)

const (
	defaultMaxSteps = 0 // Unlimited; cycles are caught by pose tracking.

	ctxCheckInterval = 1024 // Steps between context checks.
)

// Options configures a patrol.
type Options struct {
	MaxSteps int // Maximum number of steps before giving up; 0 means unlimited.
}

// Patrol walks a guard across a floor until it leaves it.
type Patrol struct {
	floor *grid.Grid[Cell]  // The floor being patrolled, only visited markers change.
	state State             // Guard position, heading and visited set.
	poses map[pose]struct{} // Every (location, heading) pair held so far.
	steps int               // Number of steps taken.
	done  bool              // Set once the guard has left the floor.
	opts  *Options
}

// New locates the guard on the floor and prepares a patrol.
// The floor is marked as the guard walks, pass a clone to keep the original intact.
func New(floor *grid.Grid[Cell], opts *Options) (*Patrol, error) {
	if opts == nil {
		opts = &Options{MaxSteps: defaultMaxSteps}
	}

	if opts.MaxSteps < 0 {
		opts.MaxSteps = defaultMaxSteps
	}

	guards := floor.Find(func(t grid.Tile[Cell]) bool {
		return t.Kind.Kind == Guard
	})
	if len(guards) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoActorFound, len(guards))
	}

	start := guards[0]
	p := &Patrol{
		floor: floor,
		state: newState(start.Loc, start.Kind.Heading),
		poses: make(map[pose]struct{}),
		opts:  opts,
	}
	p.poses[p.state.pose()] = struct{}{}
	return p, nil
}

// Step advances the guard by one rule application and returns its location.
// The second result is false once the guard has walked off the floor.
func (p *Patrol) Step() (grid.Location, bool) {
	if p.done {
		return p.state.Position, false
	}

	// The guard only ever advances onto tiles Lookup found, so its own tile is on the floor.
	_ = p.floor.MarkVisited(p.state.Position, Cell{Kind: Visited})
	p.steps++

	next, ok := p.state.Position.Neighbor(p.state.Heading, 1)
	if !ok {
		p.done = true
		return p.state.Position, false
	}

	ahead, ok := p.floor.Lookup(next)
	if !ok {
		p.done = true
		return p.state.Position, false
	}

	if !ahead.Kind.walkable() {
		p.state.turn()
		return p.state.Position, true
	}

	p.state.advance(next)
	return p.state.Position, true
}

// Run steps the guard until it leaves the floor.
// It returns ErrCycleDetected when the guard repeats a pose and ErrStepLimit
// when the configured step limit is exceeded.
func (p *Patrol) Run(ctx context.Context) error {
	for {
		if p.steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if p.opts.MaxSteps > 0 && p.steps >= p.opts.MaxSteps {
			return fmt.Errorf("%w: %d steps", ErrStepLimit, p.steps)
		}

		if _, onFloor := p.Step(); !onFloor {
			return nil
		}

		current := p.state.pose()
		if _, seen := p.poses[current]; seen {
			return fmt.Errorf("%w: at %s heading %s", ErrCycleDetected, current.loc, current.heading)
		}
		p.poses[current] = struct{}{}
	}
}

// CountVisited returns the number of distinct locations the guard has occupied.
func (p *Patrol) CountVisited() int {
	return len(p.state.visited)
}

// Visited returns the distinct locations the guard has occupied, row-major.
func (p *Patrol) Visited() []grid.Location {
	return p.state.Visited()
}

// Position returns the guard's current location.
func (p *Patrol) Position() grid.Location {
	return p.state.Position
}

// Heading returns the guard's current heading.
func (p *Patrol) Heading() grid.Direction {
	return p.state.Heading
}

// Steps returns the number of steps taken so far.
func (p *Patrol) Steps() int {
	return p.steps
}

// Done reports whether the guard has left the floor.
func (p *Patrol) Done() bool {
	return p.done
}

// String renders the floor with visited tiles marked.
func (p *Patrol) String() string {
	return p.floor.Render(Glyph)
}
