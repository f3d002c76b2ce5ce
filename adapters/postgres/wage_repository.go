// Package postgres loads wage-record microdata from a relational store.
package postgres

import (
	"context"
	"fmt"
	"strconv"

	"roikit/domain/sample"
	"roikit/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// WageRecord is one row of the wage_records table: an individual's wage
// observation plus the categorical attributes decompositions group by.
type WageRecord struct {
	ID            string  `db:"id"`
	Gender        string  `db:"gender"`
	Race          string  `db:"race"`
	StateCode     string  `db:"state_code"`
	EducationCode int     `db:"education_code"`
	Age           float64 `db:"age"`
	AnnualWage    float64 `db:"annual_wage"`
}

// wageRepository implements ports.MicrodataSource over a wage_records
// table.
type wageRepository struct {
	db      *sqlx.DB
	dataset string
}

func NewWageRepository(db *sqlx.DB, dataset string) ports.MicrodataSource {
	return &wageRepository{db: db, dataset: dataset}
}

// LoadTable reads all wage records for a dataset into a string table,
// matching the shape every other microdata source produces. Insertion
// order follows the primary key so grouping is deterministic.
func (r *wageRepository) LoadTable(ctx context.Context) (sample.Table, error) {
	query := `SELECT id, gender, race, state_code, education_code, age, annual_wage
		FROM wage_records
		WHERE dataset = $1
		ORDER BY id`

	var records []WageRecord
	if err := r.db.SelectContext(ctx, &records, query, r.dataset); err != nil {
		return sample.Table{}, fmt.Errorf("failed to query wage records: %w", err)
	}

	return TableFromRecords(records), nil
}

// TableFromRecords converts typed wage records into the common string
// table. Split out of LoadTable so tests cover the conversion without a
// live database.
func TableFromRecords(records []WageRecord) sample.Table {
	table := sample.Table{
		Columns: []string{"id", "gender", "race", "state_code", "education_code", "age", "annual_wage"},
		Rows:    make([]sample.Row, 0, len(records)),
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, sample.Row{
			"id":             rec.ID,
			"gender":         rec.Gender,
			"race":           rec.Race,
			"state_code":     rec.StateCode,
			"education_code": strconv.Itoa(rec.EducationCode),
			"age":            strconv.FormatFloat(rec.Age, 'f', -1, 64),
			"annual_wage":    strconv.FormatFloat(rec.AnnualWage, 'f', -1, 64),
		})
	}
	return table
}
