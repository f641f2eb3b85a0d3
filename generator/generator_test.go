package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/nbodysim/pointgen/generator"
)

func drain(t *testing.T, name string, seed uint64) []generator.Point {
	t.Helper()
	pattern, err := generator.Lookup(name)
	require.NoError(t, err)
	iter := pattern.Generate(rand.NewSource(seed))
	points := make([]generator.Point, 0, iter.Len())
	for iter.Next() {
		points = append(points, iter.Point())
	}
	return points
}

func TestNamesInRegistrationOrder(t *testing.T) {
	require.Equal(t, []string{"speed_clump", "random", "square"}, generator.Names())

	// Callers can't mutate the registry through the returned slice
	names := generator.Names()
	names[0] = "mutated"
	require.Equal(t, "speed_clump", generator.Names()[0])
}

func TestLookup(t *testing.T) {
	for _, name := range generator.Names() {
		pattern, err := generator.Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, pattern.Name())
	}
}

func TestLookupUnknown(t *testing.T) {
	pattern, err := generator.Lookup("circle")
	require.Error(t, err)
	require.Nil(t, pattern)
	assert.Contains(t, err.Error(), "circle")
	assert.Contains(t, err.Error(), "speed_clump")
}

func TestEveryPatternProducesN(t *testing.T) {
	for _, name := range generator.Names() {
		t.Run(name, func(t *testing.T) {
			require.Len(t, drain(t, name, 7), generator.N)
		})
	}
}

func TestIteratorIsNotRestartable(t *testing.T) {
	pattern, err := generator.Lookup("random")
	require.NoError(t, err)
	iter := pattern.Generate(rand.NewSource(1))
	require.Equal(t, generator.N, iter.Len())

	count := 0
	for iter.Next() {
		count++
		require.Equal(t, generator.N-count, iter.Len())
	}
	require.Equal(t, generator.N, count)
	require.False(t, iter.Next())
	require.False(t, iter.Next())
	require.Equal(t, 0, iter.Len())
}

func TestSpeedClumpRanges(t *testing.T) {
	sawVelocity := false
	for _, pt := range drain(t, "speed_clump", 42) {
		require.GreaterOrEqual(t, pt.X, -generator.DQuadrant)
		require.LessOrEqual(t, pt.X, generator.DQuadrant)
		require.GreaterOrEqual(t, pt.Y, -generator.DQuadrant)
		require.LessOrEqual(t, pt.Y, generator.DQuadrant)
		require.GreaterOrEqual(t, pt.VX, float64(-generator.VMax))
		require.Less(t, pt.VX, float64(generator.VMax))
		require.GreaterOrEqual(t, pt.VY, float64(-generator.VMax))
		require.Less(t, pt.VY, float64(generator.VMax))
		if pt.VX != 0 || pt.VY != 0 {
			sawVelocity = true
		}
	}
	require.True(t, sawVelocity, "speed_clump points should move")
}

func TestRandomRanges(t *testing.T) {
	for _, pt := range drain(t, "random", 42) {
		require.GreaterOrEqual(t, pt.X, -generator.RangeX)
		require.LessOrEqual(t, pt.X, generator.RangeX)
		require.GreaterOrEqual(t, pt.Y, -generator.RangeY)
		require.LessOrEqual(t, pt.Y, generator.RangeY)
		require.Zero(t, pt.VX)
		require.Zero(t, pt.VY)
	}
}

func TestSquareBands(t *testing.T) {
	var top, right, bottom, left int
	for _, pt := range drain(t, "square", 42) {
		require.True(t, generator.InBand(pt.X, pt.Y), "(%d,%d) outside every band", pt.X, pt.Y)
		require.Zero(t, pt.VX)
		require.Zero(t, pt.VY)
		if pt.Y >= generator.UpperY-generator.DQuadrant {
			top++
		}
		if pt.X >= generator.UpperX-generator.DQuadrant {
			right++
		}
		if pt.Y <= generator.LowerY+generator.DQuadrant {
			bottom++
		}
		if pt.X <= generator.LowerX+generator.DQuadrant {
			left++
		}
	}
	// 1000 draws over four quadrants leave each edge well populated
	for edge, count := range map[string]int{"top": top, "right": right, "bottom": bottom, "left": left} {
		assert.Greater(t, count, 100, "edge %s", edge)
	}
}

func TestInBand(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{-45, 100, true},
		{0, 90, true},
		{0, 89, false},
		{95, 0, true},
		{0, -95, true},
		{-91, 12, true},
		{-89, 12, false},
		{0, 0, false},
		{100, 100, true},
		{101, 95, false},
		{0, -101, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, generator.InBand(c.x, c.y), "(%d,%d)", c.x, c.y)
	}
}

func TestSameSeedSamePoints(t *testing.T) {
	for _, name := range generator.Names() {
		require.Equal(t, drain(t, name, 99), drain(t, name, 99), name)
	}
	require.NotEqual(t, drain(t, "random", 1), drain(t, "random", 2))
}

func TestUniformIntInclusive(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i != 2000; i++ {
		v := generator.UniformInt(rnd, 1, 4)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	require.Len(t, seen, 4)
}
