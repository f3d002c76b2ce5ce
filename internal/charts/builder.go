// Package charts builds chart configurations for grouped samples. The
// output is a renderer-agnostic JSON structure a frontend can hand to any
// plotting library.
package charts

import (
	"math"

	"roikit/domain/core"
	"roikit/domain/sample"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is one labeled bar or slice.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is a named sequence of points.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartConfig is a complete renderable chart description.
type ChartConfig struct {
	ChartType  string        `json:"chart_type"`
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis,omitempty"`
	YAxis      string        `json:"y_axis,omitempty"`
	ShowLegend bool          `json:"show_legend"`
	ShowGrid   bool          `json:"show_grid"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors"`
}

// BuildGroupMeansChart produces a bar chart of per-group means. Groups
// with no observed values chart as zero rather than NaN, which JSON
// cannot carry.
func BuildGroupMeansChart(title string, groups []string, groupedValues [][]float64) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(groups))
	for i, name := range groups {
		mean := sample.Mean(groupedValues[i])
		if math.IsNaN(mean) {
			mean = 0
		}
		points = append(points, ChartPoint{Label: name, Value: roundTo2(mean)})
	}

	config := &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      "Group",
		YAxis:      "Mean",
		ShowLegend: true,
		ShowGrid:   true,
		Series:     []ChartSeries{{Name: title, Data: points}},
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Renderer implements ports.ChartRenderer by packaging a group-means
// chart as a JSON artifact.
type Renderer struct {
	Title string
}

func (r Renderer) Render(groups []string, groupedValues [][]float64) (core.Artifact, error) {
	title := r.Title
	if title == "" {
		title = "Group means"
	}
	config := BuildGroupMeansChart(title, groups, groupedValues)
	if config == nil {
		return core.Artifact{}, core.NewConstructionError("no groups to chart")
	}
	return core.Artifact{
		ID:        core.NewID(),
		Kind:      core.ArtifactChart,
		Payload:   config,
		CreatedAt: core.Now(),
	}, nil
}
