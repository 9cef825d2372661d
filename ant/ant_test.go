package ant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antplane/ant"
	"github.com/katalvlaran/antplane/plane"
	"github.com/katalvlaran/antplane/strand"
)

func newAnt(t *testing.T, def strand.State, lines ...string) (*ant.Ant, *plane.Plane) {
	t.Helper()
	strands := make([]strand.Strand, len(lines))
	for i, l := range lines {
		strands[i] = strand.MustParse(l)
	}
	tbl, err := strand.NewTable(strands...)
	require.NoError(t, err)
	p := plane.New(def)

	return ant.New(tbl, p), p
}

func TestNew_StartsAtOriginHeadingNorth(t *testing.T) {
	a, _ := newAnt(t, 'a', "a NESW aaaa")
	x, y := a.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, strand.North, a.Heading())
}

// TestStep_SingleMove walks one step of "a EEEE bbbb": arriving from N the
// ant writes b and leaves East.
func TestStep_SingleMove(t *testing.T) {
	a, p := newAnt(t, 'a', "a EEEE bbbb")
	require.NoError(t, a.Step())

	x, y := a.Position()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
	assert.Equal(t, strand.East, a.Heading())
	assert.Equal(t, strand.State('b'), p.State(0, 0))
	assert.Equal(t, strand.State('a'), p.State(1, 0))
}

// TestStep_UsesArrivalDirection checks the write depends on how the ant
// arrived, not only on the cell's state.
func TestStep_UsesArrivalDirection(t *testing.T) {
	// From N go E writing 1; from E go N writing 2.
	a, p := newAnt(t, '.', ". ENNN 12..")
	require.NoError(t, a.Step()) // (0,0) arrived N -> write 1, go E
	require.NoError(t, a.Step()) // (1,0) arrived E -> write 2, go N

	assert.Equal(t, strand.State('1'), p.State(0, 0))
	assert.Equal(t, strand.State('2'), p.State(1, 0))
	x, y := a.Position()
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})
	assert.Equal(t, strand.North, a.Heading())
}

// TestStep_Langton runs the classic two-state ant and checks its first moves.
func TestStep_Langton(t *testing.T) {
	// White: turn right and paint black. Black: turn left and paint white.
	a, p := newAnt(t, 'w', "w ESWN bbbb", "b WNES wwww")
	wantPath := [][2]int{{1, 0}, {1, -1}, {0, -1}, {0, 0}, {-1, 0}}
	for i, want := range wantPath {
		require.NoError(t, a.Step(), "step %d", i)
		x, y := a.Position()
		assert.Equal(t, want, [2]int{x, y}, "after step %d", i+1)
	}
	assert.Equal(t, strand.State('w'), p.State(0, 0))
	assert.Equal(t, strand.State('b'), p.State(1, 0))
}

// TestStep_DeltaConsistency checks each step changes the position by the heading's delta.
func TestStep_DeltaConsistency(t *testing.T) {
	a, _ := newAnt(t, 'a', "a ESWN bcda", "b SWNE cdab", "c WNES dabc", "d NESW abcd")
	for i := 0; i < 200; i++ {
		x0, y0 := a.Position()
		require.NoError(t, a.Step())
		x1, y1 := a.Position()
		dx, dy := a.Heading().Delta()
		assert.Equal(t, x0+dx, x1)
		assert.Equal(t, y0+dy, y1)
	}
}

// TestStep_UnknownStateLeavesStateUntouched checks a failed lookup mutates nothing.
func TestStep_UnknownStateLeavesStateUntouched(t *testing.T) {
	a, p := newAnt(t, 'a', "a EEEE zzzz")
	require.NoError(t, a.Step())
	require.NoError(t, a.Step()) // (1,0) still default a; writes z, moves to (2,0)

	a2, p2 := newAnt(t, 'a', "a WEEE zzzz")
	require.NoError(t, a2.Step()) // write z at origin, go W
	require.NoError(t, a2.Step()) // (-1,0) arrived W -> go E back to origin
	before := p2.Len()
	err := a2.Step() // origin holds z: no strand
	require.ErrorIs(t, err, strand.ErrUnknownState)

	x, y := a2.Position()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	assert.Equal(t, strand.East, a2.Heading())
	assert.Equal(t, before, p2.Len())
	assert.Equal(t, strand.State('z'), p2.State(0, 0))

	x, y = a.Position()
	assert.Equal(t, [2]int{2, 0}, [2]int{x, y})
	assert.Equal(t, strand.State('z'), p.State(1, 0))
}
