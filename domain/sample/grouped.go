package sample

import (
	"fmt"
	"math"
	"math/rand"

	"roikit/domain/core"

	"gonum.org/v1/gonum/floats"
)

var nan = math.NaN()

// Grouped is an immutable grouped-array data holder: ordered group labels
// plus one observation slice per group. All derived quantities (flat
// concatenation, counts, NaN census, NaN-stripped views) are computed once
// at construction; nothing mutates the arrays afterwards. Callers must
// treat every returned slice as read-only.
type Grouped struct {
	groups []string
	values [][]float64

	flat     []float64
	observed [][]float64 // per-group values with NaNs stripped
	obsFlat  []float64
	n        int
	nanCount int
}

// New validates and builds a Grouped from explicit arrays.
// Fails with a construction error when groups and values are out of step.
func New(groups []string, values [][]float64) (*Grouped, error) {
	if len(groups) != len(values) {
		return nil, core.NewConstructionError(fmt.Sprintf(
			"got %d group labels but %d value arrays", len(groups), len(values)))
	}

	g := &Grouped{
		groups:   append([]string(nil), groups...),
		values:   make([][]float64, len(values)),
		observed: make([][]float64, len(values)),
	}

	for i, vs := range values {
		g.values[i] = append([]float64(nil), vs...)
		g.n += len(vs)

		obs := make([]float64, 0, len(vs))
		for _, v := range vs {
			if math.IsNaN(v) {
				g.nanCount++
				continue
			}
			obs = append(obs, v)
		}
		g.observed[i] = obs

		g.flat = append(g.flat, g.values[i]...)
		g.obsFlat = append(g.obsFlat, obs...)
	}

	return g, nil
}

// Option configures FromTable.
type Option func(*tableConfig)

type tableConfig struct {
	sampleSize int
	sampled    bool
	seed       int64
}

// WithSampleSize draws exactly one uniform subsample of the given size from
// the full table before grouping. This exists to bound the O(n^2) cost of
// the Gini pairwise formula on large microdata.
func WithSampleSize(n int) Option {
	return func(c *tableConfig) {
		c.sampleSize = n
		c.sampled = true
	}
}

// WithSeed fixes the subsampling RNG so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(c *tableConfig) { c.seed = seed }
}

// FromTable groups a flat table by one or more key columns and extracts the
// value column per group. Group order is insertion order of first
// occurrence; row order within a group is irrelevant to every metric.
// When WithSampleSize is given the subsample is drawn once, before
// grouping, so all downstream metrics see only the sample as the
// population.
func FromTable(t Table, groupColumns []string, valueColumn string, opts ...Option) (*Grouped, error) {
	cfg := tableConfig{seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(groupColumns) == 0 {
		return nil, core.NewConfigurationError("group_columns", "at least one group column is required")
	}
	for _, col := range groupColumns {
		if !t.HasColumn(col) {
			return nil, core.NewConfigurationError("group_columns", fmt.Sprintf("column %q not in table", col))
		}
	}
	if !t.HasColumn(valueColumn) {
		return nil, core.NewConfigurationError("value_column", fmt.Sprintf("column %q not in table", valueColumn))
	}

	rows := t.Rows
	if cfg.sampled {
		if cfg.sampleSize <= 0 {
			return nil, core.NewConfigurationError("sample_size",
				fmt.Sprintf("must be a positive integer, got %d", cfg.sampleSize))
		}
		if cfg.sampleSize > len(rows) {
			return nil, core.NewConfigurationError("sample_size",
				fmt.Sprintf("%d exceeds table row count %d", cfg.sampleSize, len(rows)))
		}
		rows = subsample(rows, cfg.sampleSize, cfg.seed)
	}

	var (
		order  []string
		byKey  = make(map[string][]float64)
		labels = make(map[string]bool)
	)
	for _, row := range rows {
		key := groupLabel(row, groupColumns)
		if !labels[key] {
			labels[key] = true
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], parseValue(row[valueColumn]))
	}

	values := make([][]float64, len(order))
	for i, key := range order {
		values[i] = byKey[key]
	}
	return New(order, values)
}

// subsample draws n rows uniformly without replacement, preserving the
// original row order of the survivors.
func subsample(rows []Row, n int, seed int64) []Row {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(rows))

	keep := make([]bool, len(rows))
	for _, idx := range perm[:n] {
		keep[idx] = true
	}

	out := make([]Row, 0, n)
	for i, row := range rows {
		if keep[i] {
			out = append(out, row)
		}
	}
	return out
}

// Groups returns the ordered group labels.
func (g *Grouped) Groups() []string { return g.groups }

// Values returns the raw per-group observation slices, NaNs included.
func (g *Grouped) Values() [][]float64 { return g.values }

// Observed returns the per-group observations with NaNs stripped. Metrics
// compute over these; stripping once at construction is what makes every
// reduction NaN-excluding.
func (g *Grouped) Observed() [][]float64 { return g.observed }

// Flat returns the order-preserving concatenation of all group arrays.
func (g *Grouped) Flat() []float64 { return g.flat }

// ObservedFlat returns the concatenation of all groups with NaNs stripped.
func (g *Grouped) ObservedFlat() []float64 { return g.obsFlat }

// Len is the total observation count, NaNs included.
func (g *Grouped) Len() int { return g.n }

// GroupCount is the number of groups.
func (g *Grouped) GroupCount() int { return len(g.groups) }

// NaNCount is the number of missing observations across all groups.
func (g *Grouped) NaNCount() int { return g.nanCount }

// Diagnostics returns non-fatal data-quality warnings. NaNs never raise:
// every reduction excludes them locally, but silent exclusion can bias
// results when missingness is non-random, so the caller is told.
func (g *Grouped) Diagnostics() []string {
	var notes []string
	if g.nanCount > 0 {
		notes = append(notes, fmt.Sprintf(
			"%d of %d observations are missing and will be excluded from every reduction; results may be biased if missingness is non-random",
			g.nanCount, g.n))
	}
	for i, obs := range g.observed {
		if len(obs) == 0 && len(g.values[i]) > 0 {
			notes = append(notes, fmt.Sprintf("group %q has no observed values and carries no weight", g.groups[i]))
		}
	}
	return notes
}

// Mean is the NaN-excluding mean of a pre-stripped slice. Empty input
// yields NaN, mirroring the mean of an empty census.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	return floats.Sum(xs) / float64(len(xs))
}

// Sum is a plain sum over a pre-stripped slice.
func Sum(xs []float64) float64 { return floats.Sum(xs) }
