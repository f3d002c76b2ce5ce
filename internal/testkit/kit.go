// Package testkit generates synthetic wage microdata for tests and
// examples. Wages are log-normal within each group so the generated
// samples have realistic skew and known group means.
package testkit

import (
	"context"
	"math/rand/v2"
	"strconv"

	"roikit/domain/sample"

	"gonum.org/v1/gonum/stat/distuv"
)

// GroupSpec describes one synthetic group: its label and the log-normal
// parameters of its wage distribution.
type GroupSpec struct {
	Label string
	Count int
	Mu    float64 // mean of log wage
	Sigma float64 // stddev of log wage
}

// Kit generates reproducible synthetic microdata.
type Kit struct {
	seed uint64
}

func New(seed uint64) *Kit {
	return &Kit{seed: seed}
}

// Table generates a (group, wage) table from the specs. The same seed
// always yields the same table.
func (k *Kit) Table(specs []GroupSpec) sample.Table {
	src := rand.NewPCG(k.seed, k.seed)

	table := sample.Table{Columns: []string{"group", "wage"}}
	for _, spec := range specs {
		dist := distuv.LogNormal{Mu: spec.Mu, Sigma: spec.Sigma, Src: src}
		for i := 0; i < spec.Count; i++ {
			table.Rows = append(table.Rows, sample.Row{
				"group": spec.Label,
				"wage":  strconv.FormatFloat(dist.Rand(), 'f', 2, 64),
			})
		}
	}
	return table
}

// Grouped generates a grouped sample directly.
func (k *Kit) Grouped(specs []GroupSpec) (*sample.Grouped, error) {
	return sample.FromTable(k.Table(specs), []string{"group"}, "wage")
}

// Source wraps a generated table as a ports.MicrodataSource so app-level
// tests run without files or databases.
type Source struct {
	table sample.Table
}

func (k *Kit) Source(specs []GroupSpec) *Source {
	return &Source{table: k.Table(specs)}
}

func (s *Source) LoadTable(ctx context.Context) (sample.Table, error) {
	return s.table, nil
}
