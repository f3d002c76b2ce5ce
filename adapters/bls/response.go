package bls

import (
	"encoding/json"
	"fmt"
	"strconv"

	"roikit/domain/core"
)

// Point is one observation of a BLS time series.
type Point struct {
	Year       int
	Period     string
	PeriodName string
	Value      float64
}

// Series is a parsed API response for a single series ID.
type Series struct {
	ID     string
	Points []Point
}

// apiResponse mirrors the wire shape of the v2 timeseries endpoint.
type apiResponse struct {
	Status  string `json:"status"`
	Message []string
	Results struct {
		Series []struct {
			SeriesID string `json:"seriesID"`
			Data     []struct {
				Year       string `json:"year"`
				Period     string `json:"period"`
				PeriodName string `json:"periodName"`
				Value      string `json:"value"`
			} `json:"data"`
		} `json:"series"`
	} `json:"Results"`
}

// ParseResponse decodes a raw API payload into a Series. The API reports
// failures in-band via the status field, so a well-formed error document
// still returns an error here.
func ParseResponse(payload []byte) (Series, error) {
	var resp apiResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return Series{}, fmt.Errorf("decoding BLS response: %w", err)
	}
	if resp.Status != "REQUEST_SUCCEEDED" {
		return Series{}, fmt.Errorf("BLS request failed with status %q: %v", resp.Status, resp.Message)
	}
	if len(resp.Results.Series) == 0 {
		return Series{}, fmt.Errorf("%w: BLS response contains no series", core.ErrNotFound)
	}

	raw := resp.Results.Series[0]
	series := Series{ID: raw.SeriesID, Points: make([]Point, 0, len(raw.Data))}
	for _, d := range raw.Data {
		year, err := strconv.Atoi(d.Year)
		if err != nil {
			return Series{}, fmt.Errorf("BLS point has bad year %q: %w", d.Year, err)
		}
		value, err := strconv.ParseFloat(d.Value, 64)
		if err != nil {
			return Series{}, fmt.Errorf("BLS point has bad value %q: %w", d.Value, err)
		}
		series.Points = append(series.Points, Point{
			Year:       year,
			Period:     d.Period,
			PeriodName: d.PeriodName,
			Value:      value,
		})
	}
	return series, nil
}

// January returns the January observation for a year. BLS month/year data
// is finer-grained than multi-year wage comparisons need, so January
// stands in for the whole year.
func (s Series) January(year int) (Point, error) {
	for _, p := range s.Points {
		if p.Year == year && p.PeriodName == "January" {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("%w: no January observation for %d in series %s", core.ErrNotFound, year, s.ID)
}
