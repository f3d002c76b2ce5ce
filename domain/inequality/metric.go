// Package inequality implements group-decomposable inequality indices:
// Theil T, Theil L, population-variance and Gini decompositions. Each
// metric splits the overall inequality of a grouped sample into a
// within-group term and a between-group term.
//
// Background on subgroup decomposition: http://www.fao.org/3/a-am342e.pdf
package inequality

import (
	"roikit/domain/sample"
)

// Index names one of the four supported inequality indices.
type Index string

const (
	IndexTheilT   Index = "theil_t"
	IndexTheilL   Index = "theil_l"
	IndexVariance Index = "variance"
	IndexGini     Index = "gini"
)

// Decomposition is the calculated split of an index into its within-group
// and between-group components.
//
// INVARIANTS:
// - Theil T, Theil L: Overall == Within + Between to float tolerance
// - Variance: the identity holds exactly for equal group sizes; the
//   unweighted between term leaves a residual otherwise
// - Gini: Residual = Overall - (Within + Between) may be nonzero (overlap term)
// - Ratio = Between / Overall, defined as 0 when Overall is 0
type Decomposition struct {
	Index    Index   `json:"index"`
	Within   float64 `json:"within"`
	Between  float64 `json:"between"`
	Overall  float64 `json:"overall"`
	Ratio    float64 `json:"ratio"`
	Residual float64 `json:"residual"`
}

// Metric is the shared contract across the four index variants. A metric
// owns exactly one grouped sample; construction never computes, and
// Calculate is pure - it reads only the immutable sample, so re-invoking
// it reproduces identical results. No metric shares mutable state with
// any other instance.
type Metric interface {
	Index() Index
	Sample() *sample.Grouped
	Calculate() (Decomposition, error)
}

// All constructs the four metrics over a single grouped sample.
func All(s *sample.Grouped) []Metric {
	return []Metric{NewTheilT(s), NewTheilL(s), NewVariance(s), NewGini(s)}
}

// ratio is Between/Overall. A fully degenerate sample (every observation
// identical) has zero overall inequality; zero between-share is the only
// sensible reading there.
func ratio(between, overall float64) float64 {
	if overall == 0 {
		return 0
	}
	return between / overall
}
