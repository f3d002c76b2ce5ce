package charts

import (
	"math"
	"testing"

	"roikit/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroupMeansChart(t *testing.T) {
	config := BuildGroupMeansChart("Wages", []string{"f", "m"}, [][]float64{{30000, 40000}, {29000}})
	require.NotNil(t, config)

	assert.Equal(t, "bar", config.ChartType)
	require.Len(t, config.Series, 1)
	require.Len(t, config.Series[0].Data, 2)
	assert.Equal(t, ChartPoint{Label: "f", Value: 35000}, config.Series[0].Data[0])
	assert.Equal(t, ChartPoint{Label: "m", Value: 29000}, config.Series[0].Data[1])
	assert.Len(t, config.Colors, 1)
}

func TestBuildGroupMeansChart_EmptyGroupChartsAsZero(t *testing.T) {
	config := BuildGroupMeansChart("Wages", []string{"a", "b"}, [][]float64{{math.NaN()}, {10}})
	require.NotNil(t, config)
	assert.Equal(t, 0.0, config.Series[0].Data[0].Value)
}

func TestBuildGroupMeansChart_NoGroups(t *testing.T) {
	assert.Nil(t, BuildGroupMeansChart("Wages", nil, nil))
}

func TestRenderer_ProducesChartArtifact(t *testing.T) {
	artifact, err := Renderer{Title: "Wages"}.Render([]string{"f"}, [][]float64{{1, 2}})
	require.NoError(t, err)

	assert.Equal(t, core.ArtifactChart, artifact.Kind)
	assert.False(t, artifact.ID.IsEmpty())
	require.IsType(t, &ChartConfig{}, artifact.Payload)
	assert.Equal(t, "Wages", artifact.Payload.(*ChartConfig).Title)
}

func TestRenderer_NoGroupsFails(t *testing.T) {
	_, err := Renderer{}.Render(nil, nil)
	require.Error(t, err)
	assert.True(t, core.IsConstructionError(err))
}
