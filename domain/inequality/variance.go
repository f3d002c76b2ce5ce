package inequality

import (
	"math"

	"roikit/domain/sample"
)

// Variance decomposes the population variance of a grouped sample. It has
// no positivity restriction and is the metric to reach for when values can
// be negative, e.g. earnings changes.
type Variance struct {
	s *sample.Grouped
}

// NewVariance constructs the metric; nothing is computed until Calculate.
func NewVariance(s *sample.Grouped) *Variance { return &Variance{s: s} }

func (m *Variance) Index() Index            { return IndexVariance }
func (m *Variance) Sample() *sample.Grouped { return m.s }

// Calculate computes the decomposition:
//
//	within  = sum_i (N_i/N) * popvar(group_i)
//	between = popvar(group means)   (unweighted, one value per group)
//	overall = popvar(all observations)
//
// between is deliberately the unweighted variance of the set of group
// means rather than the size-weighted ANOVA sum of squares, so each group
// counts once regardless of size. The ANOVA identity then holds exactly
// only when group sizes are equal; otherwise residual = overall - (within
// + between) is nonzero and reported as-is.
func (m *Variance) Calculate() (Decomposition, error) {
	flat := m.s.ObservedFlat()
	n := float64(len(flat))

	var within float64
	var means []float64
	for _, group := range m.s.Observed() {
		if len(group) == 0 {
			continue
		}
		within += (float64(len(group)) / n) * PopVariance(group)
		means = append(means, sample.Mean(group))
	}

	between := PopVariance(means)
	overall := PopVariance(flat)

	return Decomposition{
		Index:    IndexVariance,
		Within:   within,
		Between:  between,
		Overall:  overall,
		Ratio:    ratio(between, overall),
		Residual: overall - (within + between),
	}, nil
}

// PopVariance is the population variance (denominator N, not N-1). The
// data is treated as a census, never an inferential sample, so this must
// not silently switch to the sample formula.
func PopVariance(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mu := sample.Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}
	return ss / float64(len(xs))
}
