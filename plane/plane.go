// Package plane provides an unbounded 2D grid of cell states.
//
// Only written cells are stored; every other cell holds the plane's default
// state. Memory therefore grows with the number of cells the ant has touched,
// never with the bounding box of its walk.
package plane

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/antplane/strand"
)

// Point is an integer coordinate on the plane.
type Point struct {
	X, Y int
}

// Plane is a sparse, logically infinite grid of strand.State values.
// Not safe for concurrent use.
type Plane struct {
	def   strand.State
	cells map[Point]strand.State
}

// New returns a plane whose unset cells hold def. The origin is stored
// explicitly, which is harmless since State falls back to def anyway.
// Complexity: O(1).
func New(def strand.State) *Plane {
	return &Plane{
		def:   def,
		cells: map[Point]strand.State{{0, 0}: def},
	}
}

// State returns the state at (x,y), or the default if the cell was never set.
// Complexity: O(1) average.
func (p *Plane) State(x, y int) strand.State {
	if s, ok := p.cells[Point{x, y}]; ok {
		return s
	}

	return p.def
}

// SetState stores s at (x,y) and returns it.
// Complexity: O(1) amortized.
func (p *Plane) SetState(x, y int, s strand.State) strand.State {
	p.cells[Point{x, y}] = s

	return s
}

// Default returns the state of cells that were never set.
func (p *Plane) Default() strand.State { return p.def }

// Len returns the number of explicitly stored cells.
func (p *Plane) Len() int { return len(p.cells) }

// Points returns the stored coordinates ordered by Y, then X.
// Complexity: O(n log n).
func (p *Plane) Points() []Point {
	pts := make([]Point, 0, len(p.cells))
	for pt := range p.cells {
		pts = append(pts, pt)
	}
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}

		return cmp.Compare(a.X, b.X)
	})

	return pts
}
