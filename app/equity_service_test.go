package app

import (
	"context"
	"testing"

	"roikit/domain/core"
	"roikit/domain/inequality"
	"roikit/domain/sample"
	"roikit/internal/charts"
	"roikit/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticSource() *testkit.Source {
	return testkit.New(42).Source([]testkit.GroupSpec{
		{Label: "f", Count: 60, Mu: 10.3, Sigma: 0.5},
		{Label: "m", Count: 40, Mu: 10.5, Sigma: 0.5},
	})
}

func TestEquityService_Run(t *testing.T) {
	svc := NewEquityService(syntheticSource(), charts.Renderer{Title: "Wages by gender"})

	result, err := svc.Run(context.Background(), RunRequest{
		Title:        "Synthetic wages",
		GroupColumns: []string{"group"},
		ValueColumn:  "wage",
		Seed:         1,
	})
	require.NoError(t, err)

	assert.Len(t, result.Decompositions, 4, "log-normal wages are positive, so all four indices calculate")
	assert.Empty(t, result.Failures)
	assert.Len(t, result.Summaries, 2)
	assert.Contains(t, result.Report, "# Synthetic wages")

	kinds := make(map[core.ArtifactKind]int)
	for _, a := range result.Artifacts {
		kinds[a.Kind]++
	}
	assert.Equal(t, 1, kinds[core.ArtifactReport])
	assert.Equal(t, 4, kinds[core.ArtifactDecomposition])
	assert.Equal(t, 1, kinds[core.ArtifactChart])
}

// zeroWageSource includes a zero wage, which Theil indices reject but
// variance and Gini accept.
type zeroWageSource struct{}

func (zeroWageSource) LoadTable(context.Context) (sample.Table, error) {
	return sample.Table{
		Columns: []string{"group", "wage"},
		Rows: []sample.Row{
			{"group": "a", "wage": "0"},
			{"group": "a", "wage": "10"},
			{"group": "b", "wage": "20"},
			{"group": "b", "wage": "30"},
		},
	}, nil
}

func TestEquityService_PartialFailureDoesNotSinkRun(t *testing.T) {
	svc := NewEquityService(zeroWageSource{}, nil)

	result, err := svc.Run(context.Background(), RunRequest{
		GroupColumns: []string{"group"},
		ValueColumn:  "wage",
	})
	require.NoError(t, err)

	assert.Len(t, result.Decompositions, 2)
	assert.Contains(t, result.Failures, inequality.IndexTheilT)
	assert.Contains(t, result.Failures, inequality.IndexTheilL)

	for _, d := range result.Decompositions {
		assert.NotEqual(t, inequality.IndexTheilT, d.Index)
		assert.NotEqual(t, inequality.IndexTheilL, d.Index)
	}
}

func TestEquityService_Subsampling(t *testing.T) {
	svc := NewEquityService(syntheticSource(), nil)

	r1, err := svc.Run(context.Background(), RunRequest{
		GroupColumns: []string{"group"}, ValueColumn: "wage", SampleSize: 30, Seed: 7,
	})
	require.NoError(t, err)
	r2, err := svc.Run(context.Background(), RunRequest{
		GroupColumns: []string{"group"}, ValueColumn: "wage", SampleSize: 30, Seed: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, r1.Sample.Len())
	assert.Equal(t, r1.Decompositions, r2.Decompositions, "seeded runs are reproducible")
}

func TestEquityService_BadColumnFails(t *testing.T) {
	svc := NewEquityService(syntheticSource(), nil)

	_, err := svc.Run(context.Background(), RunRequest{
		GroupColumns: []string{"nope"}, ValueColumn: "wage",
	})
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
}
