package bls

import (
	"context"
	"fmt"
	"testing"

	"roikit/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesIDs(t *testing.T) {
	assert.Equal(t, "CUSR0000SA0", CPISeriesID())

	id, err := EmploymentSeriesID("08", "employment")
	require.NoError(t, err)
	assert.Equal(t, "LAUST080000000000005", id)

	id, err = EmploymentSeriesID("08", "unemployment rate")
	require.NoError(t, err)
	assert.Equal(t, "LAUST080000000000003", id)

	assert.Equal(t, "SMU08000000500000011", WageSeriesID("08"))
}

func TestEmploymentSeriesID_UnknownMeasure(t *testing.T) {
	_, err := EmploymentSeriesID("08", "vibes")
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
}

func cpiPayload(year int, januaryValue float64) []byte {
	return []byte(fmt.Sprintf(`{
		"status": "REQUEST_SUCCEEDED",
		"Results": {"series": [{"seriesID": "CUSR0000SA0", "data": [
			{"year": "%d", "period": "M02", "periodName": "February", "value": "%.1f"},
			{"year": "%d", "period": "M01", "periodName": "January", "value": "%.1f"}
		]}]}
	}`, year, januaryValue+1, year, januaryValue))
}

func TestParseResponse(t *testing.T) {
	series, err := ParseResponse(cpiPayload(2019, 251.7))
	require.NoError(t, err)

	assert.Equal(t, "CUSR0000SA0", series.ID)
	require.Len(t, series.Points, 2)
	assert.Equal(t, Point{Year: 2019, Period: "M01", PeriodName: "January", Value: 251.7}, series.Points[1])
}

func TestParseResponse_FailureStatus(t *testing.T) {
	_, err := ParseResponse([]byte(`{"status":"REQUEST_NOT_PROCESSED","message":["invalid key"],"Results":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_NOT_PROCESSED")
}

func TestParseResponse_EmptySeries(t *testing.T) {
	_, err := ParseResponse([]byte(`{"status":"REQUEST_SUCCEEDED","Results":{"series":[]}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestSeries_January(t *testing.T) {
	series, err := ParseResponse(cpiPayload(2019, 251.7))
	require.NoError(t, err)

	p, err := series.January(2019)
	require.NoError(t, err)
	assert.Equal(t, 251.7, p.Value)

	_, err = series.January(1999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// fakeStats serves canned payloads keyed by start year.
type fakeStats struct {
	payloads map[int][]byte
	calls    int
}

func (f *fakeStats) FetchSeries(_ context.Context, _ string, startYear, _ int) ([]byte, error) {
	f.calls++
	payload, ok := f.payloads[startYear]
	if !ok {
		return nil, fmt.Errorf("no canned payload for %d", startYear)
	}
	return payload, nil
}

func TestClient_CPIAdjustment(t *testing.T) {
	stats := &fakeStats{payloads: map[int][]byte{
		2000: cpiPayload(2000, 168.8),
		2019: cpiPayload(2019, 251.7),
	}}
	client := NewClient(stats)

	factor, err := client.CPIAdjustment(context.Background(), 2000, 2019)
	require.NoError(t, err)
	assert.InDelta(t, 251.7/168.8, factor, 1e-12)
	assert.Equal(t, 2, stats.calls, "each year fetched on its own so the pair may span the API window")
}

func TestAdjustCurrentDollars(t *testing.T) {
	cpi := map[int]float64{2000: 168.8, 2010: 217.5, 2019: 251.7}

	adjusted, err := AdjustCurrentDollars(
		[]float64{30000, 40000}, []int{2000, 2010}, cpi, 2019)
	require.NoError(t, err)
	assert.InDelta(t, 30000*251.7/168.8, adjusted[0], 1e-9)
	assert.InDelta(t, 40000*251.7/217.5, adjusted[1], 1e-9)
}

func TestAdjustCurrentDollars_MissingYear(t *testing.T) {
	_, err := AdjustCurrentDollars([]float64{1}, []int{1999}, map[int]float64{2019: 251.7}, 2019)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = AdjustCurrentDollars([]float64{1}, []int{2019}, map[int]float64{2019: 251.7}, 1999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAdjustCurrentDollars_LengthMismatch(t *testing.T) {
	_, err := AdjustCurrentDollars([]float64{1, 2}, []int{2019}, map[int]float64{2019: 251.7}, 2019)
	require.Error(t, err)
	assert.True(t, core.IsConstructionError(err))
}

func TestClient_RangeTooWide(t *testing.T) {
	client := NewClient(&fakeStats{})
	_, err := client.Fetch(context.Background(), CPISeriesID(), 1990, 2019)
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
}
