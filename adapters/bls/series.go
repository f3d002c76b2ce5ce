// Package bls constructs Bureau of Labor Statistics series IDs and parses
// the JSON payloads the public timeseries API returns. Fetching itself is
// delegated to ports.LaborStats; everything here is pure string and number
// work, so it tests without a network.
package bls

import (
	"fmt"

	"roikit/domain/core"
)

// measureCodes translates human-readable Local Area Unemployment measures
// into the numeric codes the API embeds in series IDs.
var measureCodes = map[string]string{
	"unemployment rate": "03",
	"unemployment":      "04",
	"employment":        "05",
	"labor force":       "06",
}

// CPISeriesID forms the series ID for the CPI-U, the Consumer Price Index
// for All Urban Consumers (U.S. city average, all items, 1982-84 base).
func CPISeriesID() string {
	const (
		prefix             = "CU"
		seasonalAdjustment = "S"
		periodicity        = "R"
		areaCode           = "0000"
		baseCode           = "S"
		itemCode           = "A0"
	)
	return prefix + seasonalAdjustment + periodicity + areaCode + baseCode + itemCode
}

// EmploymentSeriesID forms a Local Area Unemployment (prefix LA) series ID
// for a state. stateCode is a two-digit FIPS code such as "08"; measure is
// one of "unemployment rate", "unemployment", "employment", "labor force".
func EmploymentSeriesID(stateCode, measure string) (string, error) {
	code, ok := measureCodes[measure]
	if !ok {
		return "", core.NewConfigurationError("measure", fmt.Sprintf("unknown LAUS measure %q", measure))
	}
	const (
		prefix             = "LA"
		seasonalAdjustment = "U"
	)
	areaCode := fmt.Sprintf("ST%s00000000000", stateCode)
	return prefix + seasonalAdjustment + areaCode + code, nil
}

// WageSeriesID forms a State and Metro Area employment (prefix SM) series
// ID for statewide average weekly earnings, total private industry.
func WageSeriesID(stateCode string) string {
	const (
		prefix             = "SM"
		seasonalAdjustment = "U"
		areaCode           = "00000"
		industryCode       = "05000000"
		dataTypeCode       = "11" // average weekly earnings
	)
	return prefix + seasonalAdjustment + stateCode + areaCode + industryCode + dataTypeCode
}
