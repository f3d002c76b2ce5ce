package inequality

import (
	"math"

	"roikit/domain/core"
	"roikit/domain/sample"
)

// TheilT decomposes the Theil T index (income-share-weighted entropy) of a
// grouped sample. Defined only for strictly positive values.
//
// Reference:
// https://seer.cancer.gov/help/hdcalc/inference-methods/individual-level-survey-sample-1/measures-of-relative-disparity/theil-index-t
// https://utip.lbj.utexas.edu/papers/utip_14.pdf
type TheilT struct {
	s *sample.Grouped
}

// NewTheilT constructs the metric; nothing is computed until Calculate.
func NewTheilT(s *sample.Grouped) *TheilT { return &TheilT{s: s} }

func (m *TheilT) Index() Index            { return IndexTheilT }
func (m *TheilT) Sample() *sample.Grouped { return m.s }

// Calculate computes the decomposition:
//
//	within  = sum_i T_i * s_i
//	between = sum_i s_i * ln(mean_i / mean_all)
//	s_i     = (N_i/N) * (mean_i/mean_all)
//
// The group share s_i weights by both population share and the group's
// share of total value relative to the overall mean - the structural
// difference from Theil L. The positivity precondition is checked before
// any term is computed.
func (m *TheilT) Calculate() (Decomposition, error) {
	if err := requirePositive(m.s.ObservedFlat(), "Theil T"); err != nil {
		return Decomposition{}, err
	}

	flat := m.s.ObservedFlat()
	n := float64(len(flat))
	mu := sample.Mean(flat)

	var within, between float64
	for _, group := range m.s.Observed() {
		if len(group) == 0 {
			continue // all observations missing; the group carries no weight
		}
		groupMean := sample.Mean(group)
		share := (float64(len(group)) / n) * (groupMean / mu)
		within += TheilTIndex(group) * share
		between += share * math.Log(groupMean/mu)
	}

	overall := within + between
	return Decomposition{
		Index:   IndexTheilT,
		Within:  within,
		Between: between,
		Overall: overall,
		Ratio:   ratio(between, overall),
	}, nil
}

// TheilTIndex is the single-array Theil T core formula:
//
//	T = (1/N) * sum_j (x_j/mean) * ln(x_j/mean)
//
// Ratios negative from floating noise near zero are clipped to zero before
// the logarithm, with x*ln(x) taken as 0 in the limit. That clip is an
// approximation, not mathematically exact.
func TheilTIndex(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mu := sample.Mean(xs)
	var total float64
	for _, x := range xs {
		r := x / mu
		if r <= 0 {
			continue
		}
		total += r * math.Log(r)
	}
	return total / float64(len(xs))
}

// requirePositive enforces the Theil domain precondition: a ratio-to-mean
// logarithm is undefined at or below zero.
func requirePositive(xs []float64, index string) error {
	for _, x := range xs {
		if x <= 0 {
			return core.NewDomainError(index,
				"input contains zero or negative values; the Theil indices are defined only for strictly positive data - "+
					"use the variance decomposition for real-valued data or the Gini decomposition for non-negative data")
		}
	}
	return nil
}
