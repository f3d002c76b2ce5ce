package inequality

import (
	"roikit/domain/core"
	"roikit/domain/sample"
)

// Gini decomposes the Gini coefficient of a grouped sample. Intended for
// non-negative, income-like values; it is built from income shares and is
// uninterpretable with negative inputs. Unlike the Theil and variance
// decompositions it is only approximately additive: the residual is the
// normal "overlap" term, reported, never treated as an error.
//
// The pairwise formula is O(n^2) in sample size; bound large inputs with
// sample.WithSampleSize at construction.
type Gini struct {
	s *sample.Grouped
}

// NewGini constructs the metric; nothing is computed until Calculate.
func NewGini(s *sample.Grouped) *Gini { return &Gini{s: s} }

func (m *Gini) Index() Index            { return IndexGini }
func (m *Gini) Sample() *sample.Grouped { return m.s }

// Calculate computes the decomposition:
//
//	within  = sum_i Gini(group_i) * value_share_i * population_share_i
//	between = Gini of the mean-substituted array (every observation
//	          replaced by its group's mean)
//	overall = Gini(all observations)
func (m *Gini) Calculate() (Decomposition, error) {
	flat := m.s.ObservedFlat()
	overall, err := GiniCoefficient(flat)
	if err != nil {
		return Decomposition{}, err
	}

	total := sample.Sum(flat)
	n := float64(len(flat))

	var within float64
	meanSubstituted := make([]float64, 0, len(flat))
	for _, group := range m.s.Observed() {
		if len(group) == 0 {
			continue
		}
		groupGini, err := GiniCoefficient(group)
		if err != nil {
			return Decomposition{}, err
		}
		valueShare := sample.Sum(group) / total
		populationShare := float64(len(group)) / n
		within += groupGini * valueShare * populationShare

		groupMean := sample.Mean(group)
		for range group {
			meanSubstituted = append(meanSubstituted, groupMean)
		}
	}

	between, err := GiniCoefficient(meanSubstituted)
	if err != nil {
		return Decomposition{}, err
	}

	return Decomposition{
		Index:    IndexGini,
		Within:   within,
		Between:  between,
		Overall:  overall,
		Ratio:    ratio(between, overall),
		Residual: overall - (within + between),
	}, nil
}

// GiniCoefficient is the single-array base formula:
//
//	G = sum_i sum_j |x_i - x_j| / (2 * n^2 * mean)
//
// A zero mean makes the normalization a division by zero and fails loudly
// rather than yielding a silent NaN.
func GiniCoefficient(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, core.NewDomainError("Gini", "no observed values")
	}
	mu := sample.Mean(xs)
	if mu == 0 {
		return 0, core.NewDomainError("Gini", "mean of values is zero; the Gini coefficient is undefined (division by zero)")
	}

	var pairwise float64
	for i, xi := range xs {
		for _, xj := range xs[i+1:] {
			d := xi - xj
			if d < 0 {
				d = -d
			}
			pairwise += d
		}
	}
	// each unordered pair counted once above; the formula wants both orders
	pairwise *= 2

	n := float64(len(xs))
	return pairwise / (2 * n * n * mu), nil
}
