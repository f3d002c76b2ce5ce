package api

import (
	"encoding/json"
	"net/http"

	"roikit/domain/premium"
)

// premiumRequest carries Mincer coefficients plus the individual records
// to evaluate.
type premiumRequest struct {
	Params  premium.MincerParams `json:"params"`
	Records []premiumRecord      `json:"records"`
}

type premiumRecord struct {
	EducationCode int     `json:"education_code"`
	AgeAtStart    float64 `json:"age_at_start"`
	CurrentAge    float64 `json:"current_age"`
	StartingWage  float64 `json:"starting_wage"`
	ObservedWage  float64 `json:"observed_wage"`
}

type premiumResult struct {
	SchoolingYears     float64 `json:"schooling_years"`
	ExperienceStart    float64 `json:"experience_start"`
	ExperienceEnd      float64 `json:"experience_end"`
	CounterfactualWage float64 `json:"counterfactual_wage"`
	Premium            float64 `json:"premium"`
	Error              string  `json:"error,omitempty"`
}

// handlePremium evaluates the earnings equation per record. Coefficients
// come from the request, or from the server's wage model when the request
// carries none. Records with education codes outside the codebook report
// an error in place instead of failing the batch.
func (s *Server) handlePremium(w http.ResponseWriter, r *http.Request) {
	var req premiumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, "records must not be empty")
		return
	}

	params := req.Params
	if params == (premium.MincerParams{}) {
		if s.wageModel == nil {
			writeError(w, http.StatusBadRequest, "params are required when no wage model is configured")
			return
		}
		var err error
		params, err = s.wageModel.Coefficients(r.Context())
		if err != nil {
			writeError(w, http.StatusBadGateway, "fetching wage model coefficients: "+err.Error())
			return
		}
	}

	calc := premium.NewCalculator(params)
	results := make([]premiumResult, 0, len(req.Records))
	for _, rec := range req.Records {
		schooling, err := premium.SchoolingYears(rec.EducationCode)
		if err != nil {
			results = append(results, premiumResult{Error: err.Error()})
			continue
		}
		expStart := premium.Experience(rec.AgeAtStart, schooling)
		expEnd := premium.Experience(rec.CurrentAge, schooling)
		results = append(results, premiumResult{
			SchoolingYears:     schooling,
			ExperienceStart:    expStart,
			ExperienceEnd:      expEnd,
			CounterfactualWage: calc.CounterfactualWage(rec.StartingWage, schooling, expStart, expEnd),
			Premium:            calc.Premium(rec.ObservedWage, rec.StartingWage, schooling, expStart, expEnd),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
