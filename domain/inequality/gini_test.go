package inequality

import (
	"math"
	"testing"

	"roikit/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiniCoefficient_KnownValues(t *testing.T) {
	// Perfect equality.
	g, err := GiniCoefficient([]float64{5, 5, 5, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0, g, 1e-12)

	// Hand-computed: {1,2,3} -> ordered pairwise sum 8, G = 8/(2*9*2) = 2/9.
	g, err = GiniCoefficient([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/9.0, g, 1e-12)
}

func TestGiniCoefficient_ZeroMeanFails(t *testing.T) {
	_, err := GiniCoefficient([]float64{0, 0, 0, 0})
	require.Error(t, err, "zero mean must fail loudly, not return NaN")
	assert.True(t, core.IsDomainError(err))
}

func TestGini_ScaledCopiesDecomposeExactly(t *testing.T) {
	// Each group is a uniformly scaled, non-overlapping copy of the other;
	// the overlap term vanishes and the decomposition is exact.
	g := mustGrouped(t, []string{"low", "high"}, [][]float64{{1, 2, 3}, {10, 20, 30}})

	d, err := NewGini(g).Calculate()
	require.NoError(t, err)

	assert.InDelta(t, 0, d.Residual, 1e-9)
	assert.InDelta(t, d.Overall, d.Within+d.Between, 1e-9)
	// Hand-computed components for the fixture.
	assert.InDelta(t, 412.0/792.0, d.Overall, 1e-9)
	assert.InDelta(t, 324.0/792.0, d.Between, 1e-9)
}

func TestGini_OverlappingGroupsLeaveResidual(t *testing.T) {
	// Two identical groups overlap completely: the overlap term is the
	// entire overall minus the damped within. That residual is normal and
	// must be reported, never treated as an error.
	g := mustGrouped(t, []string{"A", "B"}, [][]float64{{1, 2, 3}, {1, 2, 3}})

	d, err := NewGini(g).Calculate()
	require.NoError(t, err)

	assert.Greater(t, d.Residual, 0.0)
	assert.LessOrEqual(t, math.Abs(d.Residual), math.Abs(d.Overall))
	assert.InDelta(t, 0, d.Between, 1e-12, "identical means carry no between-group inequality")
}

func TestGini_SingleGroupIdentity(t *testing.T) {
	values := []float64{3, 9, 27, 81}
	g := mustGrouped(t, []string{"all"}, [][]float64{values})

	d, err := NewGini(g).Calculate()
	require.NoError(t, err)

	overall, err := GiniCoefficient(values)
	require.NoError(t, err)
	assert.InDelta(t, 0, d.Between, 1e-12)
	assert.InDelta(t, overall, d.Overall, 1e-12)
}

func TestGini_RatioStaysInterpretable(t *testing.T) {
	g := mustGrouped(t, []string{"A", "B", "C"}, [][]float64{
		{900, 1100, 1000},
		{5000, 7000},
		{20000, 22000, 24000, 26000},
	})

	d, err := NewGini(g).Calculate()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, d.Ratio, 0.0)
	assert.LessOrEqual(t, d.Ratio, 1.0)
}

func TestGini_CalculateIsIdempotent(t *testing.T) {
	g := mustGrouped(t, []string{"A", "B"}, [][]float64{{2, 4, 8}, {1, 16}})
	m := NewGini(g)

	first, err := m.Calculate()
	require.NoError(t, err)
	second, err := m.Calculate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGini_NaNObservationsAreExcluded(t *testing.T) {
	nan := math.NaN()
	withNaN := mustGrouped(t, []string{"A", "B"}, [][]float64{{2, nan, 6}, {10, nan}})
	clean := mustGrouped(t, []string{"A", "B"}, [][]float64{{2, 6}, {10}})

	dn, err := NewGini(withNaN).Calculate()
	require.NoError(t, err)
	dc, err := NewGini(clean).Calculate()
	require.NoError(t, err)

	assert.Equal(t, dc, dn)
}
