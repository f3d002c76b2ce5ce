// Package premium computes Mincer-style earnings premiums: how much of an
// observed wage is explained by accumulated schooling and labor-market
// experience, and how much is program effect. Coefficients arrive
// pre-estimated through ports.WageModel; no fitting happens here.
package premium

import (
	"fmt"
	"math"

	"roikit/domain/core"
)

// MincerParams holds the coefficient vector of the earnings equation
//
//	log wage ~ schooling + schooling*experience + experience + experience^2
//
// as estimated on national survey microdata.
type MincerParams struct {
	YearsOfSchooling      float64 `json:"years_of_schooling"`
	SchoolingXExperience  float64 `json:"schooling_x_experience"`
	WorkExperience        float64 `json:"work_experience"`
	WorkExperienceSquared float64 `json:"work_experience_squared"`
}

// schoolingBins maps survey education-attainment codes onto completed
// years of schooling. Upper edges are inclusive, matching the survey
// codebook's ranges.
var schoolingBins = []struct {
	upper int
	years float64
}{
	{60, 10},  // no high school diploma
	{73, 12},  // high school or GED
	{81, 14},  // some college, associate's
	{92, 13},  // certificate programs
	{111, 16}, // bachelor's
	{123, 18}, // master's
	{124, 19}, // professional degree
	{125, 20}, // doctorate
}

// SchoolingYears converts a survey education code into completed years of
// schooling. Codes outside (−1, 125] are outside the codebook.
func SchoolingYears(educationCode int) (float64, error) {
	if educationCode <= -1 {
		return 0, fmt.Errorf("%w: education code %d below codebook range", core.ErrDomain, educationCode)
	}
	for _, bin := range schoolingBins {
		if educationCode <= bin.upper {
			return bin.years, nil
		}
	}
	return 0, fmt.Errorf("%w: education code %d above codebook range", core.ErrDomain, educationCode)
}

// Experience is potential labor-market experience: years alive after
// finishing school, assuming schooling starts at age six. Never negative.
func Experience(age, schoolingYears float64) float64 {
	return math.Max(0, age-schoolingYears-6)
}

// Calculator evaluates the earnings equation for individual records.
type Calculator struct {
	params MincerParams
}

func NewCalculator(params MincerParams) *Calculator {
	return &Calculator{params: params}
}

// value evaluates the experience-dependent part of the earnings equation
// at a given experience level.
func (c *Calculator) value(schooling, experience float64) float64 {
	return c.params.SchoolingXExperience*experience*schooling +
		c.params.WorkExperience*experience +
		c.params.WorkExperienceSquared*experience*experience
}

// WageGrowth is the predicted fractional wage change between two
// experience levels at a fixed level of schooling.
func (c *Calculator) WageGrowth(schooling, experienceStart, experienceEnd float64) float64 {
	return c.value(schooling, experienceEnd) - c.value(schooling, experienceStart)
}

// CounterfactualWage projects a starting wage forward along the earnings
// equation: the wage the person would plausibly earn today had nothing but
// experience accumulated.
func (c *Calculator) CounterfactualWage(startingWage, schooling, experienceStart, experienceEnd float64) float64 {
	return startingWage * (1 + c.WageGrowth(schooling, experienceStart, experienceEnd))
}

// Premium is the observed wage minus the counterfactual wage: the part of
// current earnings the equation does not explain.
func (c *Calculator) Premium(observedWage, startingWage, schooling, experienceStart, experienceEnd float64) float64 {
	return observedWage - c.CounterfactualWage(startingWage, schooling, experienceStart, experienceEnd)
}
