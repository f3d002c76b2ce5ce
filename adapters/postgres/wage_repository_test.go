package postgres

import (
	"testing"

	"roikit/domain/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFromRecords(t *testing.T) {
	records := []WageRecord{
		{ID: "1", Gender: "f", Race: "x", StateCode: "08", EducationCode: 73, Age: 31, AnnualWage: 42000},
		{ID: "2", Gender: "m", Race: "y", StateCode: "36", EducationCode: 111, Age: 28.5, AnnualWage: 51000.5},
	}

	table := TableFromRecords(records)
	assert.Equal(t, []string{"id", "gender", "race", "state_code", "education_code", "age", "annual_wage"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "42000", table.Rows[0]["annual_wage"])
	assert.Equal(t, "51000.5", table.Rows[1]["annual_wage"])
	assert.Equal(t, "73", table.Rows[0]["education_code"])
}

func TestTableFromRecords_FeedsGrouping(t *testing.T) {
	records := []WageRecord{
		{ID: "1", Gender: "f", AnnualWage: 42000},
		{ID: "2", Gender: "m", AnnualWage: 29000},
		{ID: "3", Gender: "f", AnnualWage: 31000},
	}

	grouped, err := sample.FromTable(TableFromRecords(records), []string{"gender"}, "annual_wage")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "m"}, grouped.Groups())
	assert.Equal(t, []float64{42000, 31000}, grouped.Values()[0])
}
