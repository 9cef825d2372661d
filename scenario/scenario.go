package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/antplane/ant"
	"github.com/katalvlaran/antplane/plane"
	"github.com/katalvlaran/antplane/strand"
)

// Scenario is one complete simulation: strands, step count and the result of
// running the ant for that many steps. It is immutable after New returns.
type Scenario struct {
	table *strand.Table
	plane *plane.Plane
	ant   *ant.Ant
	steps int
}

// New builds the scenario and runs it to completion.
//
// The plane's default state is strands[0].Initial. Returns ErrNoStrands for an
// empty list, ErrNegativeSteps for steps < 0, strand.ErrMalformedStrand for a
// strand that fails Validate, and an error wrapping
// strand.ErrUnknownState if the ant reaches a state without a strand.
// Complexity: O(len(strands) + steps) time, O(len(strands) + steps) memory.
func New(strands []strand.Strand, steps int, opts ...Option) (*Scenario, error) {
	if len(strands) == 0 {
		return nil, ErrNoStrands
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table, err := strand.NewTable(strands...)
	if err != nil {
		return nil, err
	}
	p := plane.New(strands[0].Initial)
	sc := &Scenario{table: table, plane: p, ant: ant.New(table, p), steps: steps}

	for i := 1; i <= steps; i++ {
		if err := sc.ant.Step(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if o.OnStep != nil {
			x, y := sc.ant.Position()
			if err := o.OnStep(StepInfo{Step: i, X: x, Y: y, Heading: sc.ant.Heading()}); err != nil {
				return nil, err
			}
		}
	}

	return sc, nil
}

// FinalPosition returns where the ant ended up.
func (s *Scenario) FinalPosition() (x, y int) { return s.ant.Position() }

// Steps returns the step count the scenario was run for.
func (s *Scenario) Steps() int { return s.steps }

// Strands returns the strands in input order.
func (s *Scenario) Strands() []strand.Strand { return s.table.Strands() }

// Cells returns the number of cells stored on the plane.
func (s *Scenario) Cells() int { return s.plane.Len() }

// Default returns the state of cells the ant never wrote: strands[0].Initial.
func (s *Scenario) Default() strand.State { return s.plane.Default() }

// Extent returns the corners of the smallest rectangle holding every stored
// cell. The origin is always stored, so the rectangle is never empty.
// Complexity: O(n log n) in stored cells.
func (s *Scenario) Extent() (lo, hi plane.Point) {
	pts := s.plane.Points()
	lo, hi = pts[0], pts[len(pts)-1]
	for _, pt := range pts {
		lo.X = min(lo.X, pt.X)
		hi.X = max(hi.X, pt.X)
	}

	return lo, hi
}

// State returns the final state of cell (x,y).
func (s *Scenario) State(x, y int) strand.State { return s.plane.State(x, y) }

// Result returns the final position line, "# <x> <y>".
func (s *Scenario) Result() string {
	x, y := s.FinalPosition()

	return "# " + strconv.Itoa(x) + " " + strconv.Itoa(y)
}

// String renders the scenario block: one line per strand, the step count, then Result.
func (s *Scenario) String() string {
	lines := make([]string, 0, s.table.Len()+2)
	for _, st := range s.table.Strands() {
		lines = append(lines, st.String())
	}
	lines = append(lines, strconv.Itoa(s.steps), s.Result())

	return strings.Join(lines, "\n")
}
