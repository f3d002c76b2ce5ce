package bls

import (
	"context"
	"fmt"

	"roikit/domain/core"
	"roikit/ports"
)

// maxRangeYears is the widest window the public API serves per request.
const maxRangeYears = 20

// Client composes a ports.LaborStats fetcher with series construction and
// response parsing.
type Client struct {
	stats ports.LaborStats
}

func NewClient(stats ports.LaborStats) *Client {
	return &Client{stats: stats}
}

// Fetch retrieves and parses one series over a year range.
func (c *Client) Fetch(ctx context.Context, seriesID string, startYear, endYear int) (Series, error) {
	if endYear-startYear > maxRangeYears {
		return Series{}, core.NewConfigurationError("year range",
			fmt.Sprintf("%d-%d spans more than %d years; the API serves at most %d", startYear, endYear, maxRangeYears, maxRangeYears))
	}
	payload, err := c.stats.FetchSeries(ctx, seriesID, startYear, endYear)
	if err != nil {
		return Series{}, fmt.Errorf("fetching series %s: %w", seriesID, err)
	}
	return ParseResponse(payload)
}

// CPIAdjustment returns the inflation factor between two years, using the
// January CPI-U of each. Multiplying a start-year dollar amount by the
// factor restates it in end-year dollars. The two years are fetched in
// separate requests so the pair may span more than the API's window.
func (c *Client) CPIAdjustment(ctx context.Context, startYear, endYear int) (float64, error) {
	id := CPISeriesID()

	start, err := c.Fetch(ctx, id, startYear, startYear)
	if err != nil {
		return 0, err
	}
	end, err := c.Fetch(ctx, id, endYear, endYear)
	if err != nil {
		return 0, err
	}

	startCPI, err := start.January(startYear)
	if err != nil {
		return 0, err
	}
	endCPI, err := end.January(endYear)
	if err != nil {
		return 0, err
	}
	if startCPI.Value == 0 {
		return 0, core.NewDomainError("cpi", "start-year CPI is zero")
	}
	return endCPI.Value / startCPI.Value, nil
}

// AdjustCurrentDollars restates each wage in target-year dollars using a
// year-keyed CPI table (as produced by CPIRange). wages[i] was earned in
// years[i].
func AdjustCurrentDollars(wages []float64, years []int, cpiByYear map[int]float64, targetYear int) ([]float64, error) {
	if len(wages) != len(years) {
		return nil, core.NewConstructionError(
			fmt.Sprintf("got %d wages but %d years", len(wages), len(years)))
	}
	target, ok := cpiByYear[targetYear]
	if !ok {
		return nil, fmt.Errorf("%w: no CPI for target year %d", core.ErrNotFound, targetYear)
	}

	out := make([]float64, len(wages))
	for i, wage := range wages {
		cpi, ok := cpiByYear[years[i]]
		if !ok {
			return nil, fmt.Errorf("%w: no CPI for year %d", core.ErrNotFound, years[i])
		}
		out[i] = wage * (target / cpi)
	}
	return out, nil
}

// CPIRange returns January CPI-U values for every year in [startYear,
// endYear], keyed by year.
func (c *Client) CPIRange(ctx context.Context, startYear, endYear int) (map[int]float64, error) {
	series, err := c.Fetch(ctx, CPISeriesID(), startYear, endYear)
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64)
	for _, p := range series.Points {
		if p.PeriodName == "January" {
			out[p.Year] = p.Value
		}
	}
	return out, nil
}
