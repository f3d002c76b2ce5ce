package inequality

import (
	"math"

	"roikit/domain/sample"
)

// TheilL decomposes the Theil L index (mean log deviation) of a grouped
// sample. Same positivity precondition as Theil T, but groups are weighted
// by population share only, which makes the index more sensitive to the
// lower tail of the distribution.
type TheilL struct {
	s *sample.Grouped
}

// NewTheilL constructs the metric; nothing is computed until Calculate.
func NewTheilL(s *sample.Grouped) *TheilL { return &TheilL{s: s} }

func (m *TheilL) Index() Index            { return IndexTheilL }
func (m *TheilL) Sample() *sample.Grouped { return m.s }

// Calculate computes the decomposition:
//
//	within  = sum_i L_i * s_i
//	between = sum_i s_i * ln(mean_all / mean_i)
//	s_i     = N_i/N
//
// Note the weight is population share only - no value-share term. The two
// Theil weighting schemes must not be conflated.
func (m *TheilL) Calculate() (Decomposition, error) {
	if err := requirePositive(m.s.ObservedFlat(), "Theil L"); err != nil {
		return Decomposition{}, err
	}

	flat := m.s.ObservedFlat()
	n := float64(len(flat))
	mu := sample.Mean(flat)

	var within, between float64
	for _, group := range m.s.Observed() {
		if len(group) == 0 {
			continue
		}
		groupMean := sample.Mean(group)
		share := float64(len(group)) / n
		within += TheilLIndex(group) * share
		between += share * math.Log(mu/groupMean)
	}

	overall := within + between
	return Decomposition{
		Index:   IndexTheilL,
		Within:  within,
		Between: between,
		Overall: overall,
		Ratio:   ratio(between, overall),
	}, nil
}

// TheilLIndex is the single-array mean log deviation:
//
//	L = (1/N) * sum_j ln(mean / x_j)
func TheilLIndex(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mu := sample.Mean(xs)
	var total float64
	for _, x := range xs {
		total += math.Log(mu / x)
	}
	return total / float64(len(xs))
}
