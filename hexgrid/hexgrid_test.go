package hexgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/hexgrid"
)

const (
	radius = 10.0
	tol    = 1e-9
)

// EnumerateSuite exercises the ring/spoke/offset walk across grid sizes.
type EnumerateSuite struct {
	suite.Suite
}

// TestCounts verifies the centred hexagonal numbers and the 6r ring sizes.
func (s *EnumerateSuite) TestCounts() {
	for g := 0; g <= 8; g++ {
		cells := hexgrid.Cells(g, radius)
		require.Len(s.T(), cells, 3*g*g+3*g+1, "gridSize=%d", g)
		require.Equal(s.T(), len(cells), hexgrid.CellCount(g))

		perRing := map[int]int{}
		for _, c := range cells {
			perRing[c.Ring]++
		}
		require.Equal(s.T(), 1, perRing[0])
		for r := 1; r <= g; r++ {
			require.Equal(s.T(), 6*r, perRing[r], "gridSize=%d ring=%d", g, r)
			require.Equal(s.T(), 6*r, hexgrid.RingSize(r))
		}
	}
}

// TestRingDistances checks that ring r cells lie between the inner and outer
// radius of the hexagonal ring and that spoke starts sit exactly at r·h.
func (s *EnumerateSuite) TestRingDistances() {
	h := hexgrid.HexagonHeight(radius)
	for c := range hexgrid.Enumerate(6, radius) {
		d := c.Position.Len()
		if c.Ring == 0 {
			require.InDelta(s.T(), 0.0, d, tol)
			continue
		}
		outer := float64(c.Ring) * h
		require.LessOrEqual(s.T(), d, outer+tol)
		require.GreaterOrEqual(s.T(), d, outer*math.Sqrt(3)/2-tol)
		if c.Offset == 0 {
			require.InDelta(s.T(), outer, d, tol)
		}
		require.GreaterOrEqual(s.T(), c.Offset, 0)
		require.Less(s.T(), c.Offset, c.Ring)
		require.GreaterOrEqual(s.T(), c.Spoke, 0)
		require.Less(s.T(), c.Spoke, hexgrid.Spokes)
	}
}

// TestAxialDistanceEqualsRing uses axial coordinates as an independent oracle.
func (s *EnumerateSuite) TestAxialDistanceEqualsRing() {
	seen := map[hexgrid.Axial]bool{}
	origin := hexgrid.Axial{}
	for c := range hexgrid.Enumerate(5, radius) {
		a := c.Axial(radius)
		require.Equal(s.T(), c.Ring, origin.Distance(a), "cell %+v", c)
		require.False(s.T(), seen[a], "duplicate placement %+v", a)
		seen[a] = true
		require.True(s.T(), a.Position(radius).AlmostEqual(c.Position, 1e-6))
	}
}

// TestNeighborsReachInward checks that every outer cell touches the previous ring.
func (s *EnumerateSuite) TestNeighborsReachInward() {
	const g = 4
	ringOf := map[hexgrid.Axial]int{}
	for c := range hexgrid.Enumerate(g, radius) {
		ringOf[c.Axial(radius)] = c.Ring
	}
	for a, ring := range ringOf {
		if ring == 0 {
			continue
		}
		inward := false
		for _, n := range a.Neighbors() {
			if r, ok := ringOf[n]; ok && r == ring-1 {
				inward = true
			}
		}
		require.True(s.T(), inward, "cell %+v in ring %d has no inward neighbour", a, ring)
	}
}

// TestGridSizeOne verifies the seven-cell scenario.
func (s *EnumerateSuite) TestGridSizeOne() {
	cells := hexgrid.Cells(1, radius)
	require.Len(s.T(), cells, 7)
	require.True(s.T(), cells[0].Position.AlmostEqual(geometry.Origin, 0))

	wantAngles := []float64{30, 90, 150, 210, 270, 330}
	for i, c := range cells[1:] {
		require.Equal(s.T(), 1, c.Ring)
		require.Equal(s.T(), i, c.Spoke)
		require.InDelta(s.T(), radius*math.Sqrt(3), c.Position.Len(), tol)
		want := geometry.Polar(radius*math.Sqrt(3), geometry.Radians(wantAngles[i]))
		require.True(s.T(), want.AlmostEqual(c.Position, tol), "spoke %d: got %+v want %+v", i, c.Position, want)
	}
}

// TestRestartableAndDeterministic ranges the same sequence twice.
func (s *EnumerateSuite) TestRestartableAndDeterministic() {
	seq := hexgrid.Enumerate(4, radius)
	var first, second []hexgrid.Cell
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	require.Len(s.T(), first, 61)
	require.Equal(s.T(), first, second)
	require.Equal(s.T(), first, hexgrid.Cells(4, radius))
}

// TestEarlyBreak verifies that the walk stops when the consumer stops.
func (s *EnumerateSuite) TestEarlyBreak() {
	n := 0
	for range hexgrid.Enumerate(10, radius) {
		n++
		if n == 5 {
			break
		}
	}
	require.Equal(s.T(), 5, n)
}

// TestNegativeGridSize yields nothing.
func (s *EnumerateSuite) TestNegativeGridSize() {
	require.Empty(s.T(), hexgrid.Cells(-1, radius))
	require.Equal(s.T(), 0, hexgrid.CellCount(-3))
	require.Nil(s.T(), hexgrid.Rings(-1, radius))
	require.Equal(s.T(), 0, hexgrid.RingSize(-1))
}

// TestRings groups cells by ring.
func (s *EnumerateSuite) TestRings() {
	rings := hexgrid.Rings(3, radius)
	require.Len(s.T(), rings, 4)
	for r, cells := range rings {
		require.Len(s.T(), cells, hexgrid.RingSize(r))
		for _, c := range cells {
			require.Equal(s.T(), r, c.Ring)
		}
	}
}

func TestEnumerateSuite(t *testing.T) {
	suite.Run(t, new(EnumerateSuite))
}
