// Package ant moves a single ant across a plane according to a strand table.
package ant

import (
	"fmt"

	"github.com/katalvlaran/antplane/plane"
	"github.com/katalvlaran/antplane/strand"
)

// Ant holds a position and the heading it last moved in.
// It starts at the origin heading North.
type Ant struct {
	table   *strand.Table
	plane   *plane.Plane
	x, y    int
	heading strand.Direction
}

// New places an ant at (0,0) on p, governed by table.
func New(table *strand.Table, p *plane.Plane) *Ant {
	return &Ant{table: table, plane: p, heading: strand.North}
}

// Step moves the ant once.
//
// The cell being left is rewritten using the strand of the state it held on
// arrival, keyed by the direction the ant arrived from. The new heading comes
// from the same key. If the cell's state has no strand the error wraps
// strand.ErrUnknownState and neither the ant nor the plane changes.
// Complexity: O(1) average.
func (a *Ant) Step() error {
	state := a.plane.State(a.x, a.y)
	s, err := a.table.Lookup(state)
	if err != nil {
		return fmt.Errorf("ant at (%d,%d): %w", a.x, a.y, err)
	}

	next := s.OutDirection(a.heading)
	a.plane.SetState(a.x, a.y, s.OutState(a.heading))
	dx, dy := next.Delta()
	a.x += dx
	a.y += dy
	a.heading = next

	return nil
}

// Position returns the ant's coordinates.
func (a *Ant) Position() (x, y int) { return a.x, a.y }

// Heading returns the direction of the ant's last move (North before any).
func (a *Ant) Heading() strand.Direction { return a.heading }
