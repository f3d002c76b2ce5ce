// Package report renders decomposition runs as per-group summary tables
// and markdown/HTML documents.
package report

import (
	"encoding/json"
	"math"

	"roikit/domain/sample"

	"github.com/montanaflynn/stats"
)

// GroupSummary carries descriptive statistics for one group of the
// sample. Summary statistics cover observed values only; Missing counts
// what was excluded.
type GroupSummary struct {
	Group           string  `json:"group"`
	Count           int     `json:"count"`
	Missing         int     `json:"missing"`
	Mean            float64 `json:"mean"`
	Median          float64 `json:"median"`
	StdDev          float64 `json:"std_dev"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	PopulationShare float64 `json:"population_share"`
	ValueShare      float64 `json:"value_share"`
}

// MarshalJSON encodes NaN statistics (all-missing groups) as null, which
// encoding/json cannot do for raw NaN.
func (s GroupSummary) MarshalJSON() ([]byte, error) {
	nullable := func(v float64) *float64 {
		if math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Group           string   `json:"group"`
		Count           int      `json:"count"`
		Missing         int      `json:"missing"`
		Mean            *float64 `json:"mean"`
		Median          *float64 `json:"median"`
		StdDev          *float64 `json:"std_dev"`
		Min             *float64 `json:"min"`
		Max             *float64 `json:"max"`
		PopulationShare float64  `json:"population_share"`
		ValueShare      float64  `json:"value_share"`
	}{
		Group:           s.Group,
		Count:           s.Count,
		Missing:         s.Missing,
		Mean:            nullable(s.Mean),
		Median:          nullable(s.Median),
		StdDev:          nullable(s.StdDev),
		Min:             nullable(s.Min),
		Max:             nullable(s.Max),
		PopulationShare: s.PopulationShare,
		ValueShare:      s.ValueShare,
	})
}

// Summarize computes descriptive statistics for every group. Groups with
// no observed values report NaN statistics and zero shares.
func Summarize(grouped *sample.Grouped) []GroupSummary {
	observed := grouped.Observed()
	totalObserved := len(grouped.ObservedFlat())
	totalSum := sample.Sum(grouped.ObservedFlat())

	summaries := make([]GroupSummary, 0, grouped.GroupCount())
	for i, name := range grouped.Groups() {
		values := observed[i]
		summary := GroupSummary{
			Group:   name,
			Count:   len(values),
			Missing: len(grouped.Values()[i]) - len(values),
			Mean:    math.NaN(),
			Median:  math.NaN(),
			StdDev:  math.NaN(),
			Min:     math.NaN(),
			Max:     math.NaN(),
		}
		if len(values) > 0 {
			data := stats.Float64Data(values)
			summary.Mean, _ = stats.Mean(data)
			summary.Median, _ = stats.Median(data)
			summary.StdDev, _ = stats.StandardDeviationPopulation(data)
			summary.Min, _ = stats.Min(data)
			summary.Max, _ = stats.Max(data)
			if totalObserved > 0 {
				summary.PopulationShare = float64(len(values)) / float64(totalObserved)
			}
			if totalSum != 0 {
				summary.ValueShare = sample.Sum(values) / totalSum
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
