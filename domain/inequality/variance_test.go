package inequality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariance_BetweenDominatesSpreadGroups(t *testing.T) {
	// Group means 2 vs 20 differ far more than the within-group spread.
	g := mustGrouped(t, []string{"A", "B"}, [][]float64{{1, 2, 3}, {10, 20, 30}})

	d, err := NewVariance(g).Calculate()
	require.NoError(t, err)

	assert.Greater(t, d.Between, d.Within)
	// Hand-computed: within = 0.5*popvar(1,2,3) + 0.5*popvar(10,20,30)
	assert.InDelta(t, 101.0/3.0, d.Within, 1e-9)
	assert.InDelta(t, 81.0, d.Between, 1e-9)
	assert.InDelta(t, 688.0/6.0, d.Overall, 1e-9)
}

func TestVariance_ResidualIsReported(t *testing.T) {
	g := mustGrouped(t, []string{"A", "B", "C"}, [][]float64{
		{-5, 0, 5, 12},
		{3, 3, 3, 9},
		{-20, 14, 31, 2, 8},
	})

	d, err := NewVariance(g).Calculate()
	require.NoError(t, err)

	// The identity only holds exactly with equal group sizes; for unequal
	// sizes the unweighted between-term leaves a residual which is still
	// reported, not folded away.
	assert.InDelta(t, d.Overall-(d.Within+d.Between), d.Residual, 1e-12)
}

func TestVariance_ExactDecompositionEqualGroups(t *testing.T) {
	// Equal-size groups make the unweighted between-variance coincide with
	// the ANOVA between term, so overall = within + between exactly.
	g := mustGrouped(t, []string{"A", "B"}, [][]float64{{1, 2, 3}, {10, 20, 30}})

	d, err := NewVariance(g).Calculate()
	require.NoError(t, err)

	assert.InDelta(t, d.Overall, d.Within+d.Between, 1e-9)
	assert.InDelta(t, 0, d.Residual, 1e-9)
}

func TestVariance_HandlesNegativeValues(t *testing.T) {
	// Earnings changes can be negative; variance is the real-line-safe metric.
	g := mustGrouped(t, []string{"up", "down"}, [][]float64{{1500, -200, 900}, {-4000, -3500}})

	d, err := NewVariance(g).Calculate()
	require.NoError(t, err)
	assert.Greater(t, d.Overall, 0.0)
}

func TestVariance_SingleGroupIdentity(t *testing.T) {
	values := []float64{4, 7, -2, 14}
	g := mustGrouped(t, []string{"all"}, [][]float64{values})

	d, err := NewVariance(g).Calculate()
	require.NoError(t, err)

	assert.InDelta(t, 0, d.Between, 1e-12, "a single group's mean has no variance")
	assert.InDelta(t, PopVariance(values), d.Within, 1e-12)
	assert.InDelta(t, d.Within, d.Overall, 1e-12)
}

func TestPopVariance_UsesPopulationDenominator(t *testing.T) {
	// popvar of {2, 4} is 1.0; the sample formula would give 2.0.
	assert.InDelta(t, 1.0, PopVariance([]float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, PopVariance([]float64{6}), 1e-12)
}

func TestVariance_GroupOrderInvariance(t *testing.T) {
	g1 := mustGrouped(t, []string{"x", "y"}, [][]float64{{1, 5, 9}, {-4, 0, 2, 6}})
	g2 := mustGrouped(t, []string{"y", "x"}, [][]float64{{-4, 0, 2, 6}, {1, 5, 9}})

	d1, err := NewVariance(g1).Calculate()
	require.NoError(t, err)
	d2, err := NewVariance(g2).Calculate()
	require.NoError(t, err)

	assert.InDelta(t, d1.Within, d2.Within, 1e-12)
	assert.InDelta(t, d1.Between, d2.Between, 1e-12)
	assert.InDelta(t, d1.Residual, d2.Residual, 1e-12)
}
