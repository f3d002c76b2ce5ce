package ports

import (
	"context"
)

// LaborStats fetches raw BLS time-series payloads by series ID. The
// network lives entirely behind this port; the module itself performs no
// network operation. adapters/bls builds series IDs and parses the
// payloads this port returns.
type LaborStats interface {
	FetchSeries(ctx context.Context, seriesID string, startYear, endYear int) ([]byte, error)
}

// GeocodeRequest identifies a street address to resolve.
type GeocodeRequest struct {
	Street    string
	City      string
	StateCode string
}

// Geocoder resolves addresses to census geography payloads, same
// no-network rule as LaborStats.
type Geocoder interface {
	Geocode(ctx context.Context, req GeocodeRequest) ([]byte, error)
}
