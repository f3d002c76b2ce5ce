package sample

import (
	"strconv"
	"strings"
)

// Row holds one record's raw cell values keyed by column name.
type Row map[string]string

// Table is the tabular contract any upstream loader satisfies: ordered rows
// of raw cells. Loaders (Excel, CSV, Postgres wage records) produce one of
// these; FromTable turns it into a Grouped.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the table carries the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// groupLabel composes a group key from one or more key columns. Multi-column
// keys are joined the way they display: "female|bachelors".
func groupLabel(row Row, groupColumns []string) string {
	if len(groupColumns) == 1 {
		return strings.TrimSpace(row[groupColumns[0]])
	}
	parts := make([]string, len(groupColumns))
	for i, col := range groupColumns {
		parts[i] = strings.TrimSpace(row[col])
	}
	return strings.Join(parts, "|")
}

// parseValue converts a raw cell into a float64. Empty or unparseable cells
// become NaN, the missing-value marker every reduction downstream excludes.
func parseValue(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nan
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nan
	}
	return v
}
