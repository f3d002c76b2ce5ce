// Package census builds Census Geocoder requests and extracts block-group
// GEOIDs from the responses. Fetching is delegated to ports.Geocoder.
package census

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"roikit/domain/core"
	"roikit/ports"
)

const geocoderBase = "https://geocoding.geo.census.gov/geocoder/geographies/address"

// RequestURL forms the geographies-by-address lookup URL for a street
// address. The vintage pins geography definitions to the 2010 census so
// GEOIDs stay joinable against block-group level deprivation indices.
func RequestURL(req ports.GeocodeRequest) string {
	q := url.Values{}
	q.Set("street", req.Street)
	q.Set("city", req.City)
	q.Set("state", req.StateCode)
	q.Set("benchmark", "9")
	q.Set("format", "json")
	q.Set("vintage", "Census2010_Census2010")
	return geocoderBase + "?" + q.Encode()
}

// geocoderResponse mirrors the slice of the geocoder payload we need: the
// tract GEOID and the block-group digit of the first address match.
type geocoderResponse struct {
	Result struct {
		AddressMatches []struct {
			MatchedAddress string `json:"matchedAddress"`
			Geographies    struct {
				CensusTracts []struct {
					GEOID string `json:"GEOID"`
				} `json:"Census Tracts"`
				CensusBlocks []struct {
					BlockGroup string `json:"BLKGRP"`
				} `json:"Census Blocks"`
			} `json:"geographies"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// ParseBlockGroupGEOID extracts a twelve-digit block-group GEOID from a
// geocoder payload: tract GEOID (state[2] + county[3] + tract[6]) plus the
// block-group digit. Block groups roughly correspond to neighborhoods.
func ParseBlockGroupGEOID(payload []byte) (string, error) {
	var resp geocoderResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", fmt.Errorf("decoding geocoder response: %w", err)
	}
	matches := resp.Result.AddressMatches
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: address did not geocode", core.ErrNotFound)
	}
	geo := matches[0].Geographies
	if len(geo.CensusTracts) == 0 || len(geo.CensusBlocks) == 0 {
		return "", fmt.Errorf("%w: geocoder match lacks tract or block geography", core.ErrNotFound)
	}
	return geo.CensusTracts[0].GEOID + geo.CensusBlocks[0].BlockGroup, nil
}

// Client composes a ports.Geocoder with response parsing.
type Client struct {
	geocoder ports.Geocoder
}

func NewClient(geocoder ports.Geocoder) *Client {
	return &Client{geocoder: geocoder}
}

// BlockGroupGEOID resolves a street address to its block-group GEOID.
func (c *Client) BlockGroupGEOID(ctx context.Context, req ports.GeocodeRequest) (string, error) {
	payload, err := c.geocoder.Geocode(ctx, req)
	if err != nil {
		return "", fmt.Errorf("geocoding %q: %w", req.Street, err)
	}
	return ParseBlockGroupGEOID(payload)
}
