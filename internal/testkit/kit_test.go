package testkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var specs = []GroupSpec{
	{Label: "f", Count: 50, Mu: 10.3, Sigma: 0.5},
	{Label: "m", Count: 50, Mu: 10.5, Sigma: 0.5},
}

func TestKit_Reproducible(t *testing.T) {
	t1 := New(42).Table(specs)
	t2 := New(42).Table(specs)
	assert.Equal(t, t1, t2, "equal seeds must generate identical microdata")

	t3 := New(43).Table(specs)
	assert.NotEqual(t, t1.Rows[0]["wage"], t3.Rows[0]["wage"])
}

func TestKit_Grouped(t *testing.T) {
	g, err := New(42).Grouped(specs)
	require.NoError(t, err)

	assert.Equal(t, []string{"f", "m"}, g.Groups())
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 0, g.NaNCount())
	for _, v := range g.ObservedFlat() {
		assert.Positive(t, v, "log-normal wages are strictly positive")
	}
}

func TestKit_Source(t *testing.T) {
	table, err := New(42).Source(specs).LoadTable(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 100)
}
