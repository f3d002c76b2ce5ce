package ports

import (
	"roikit/domain/core"
)

// ChartRenderer turns a grouped sample into a displayable artifact. It is
// an optional, separately invoked collaborator: the decomposition engine
// functions identically when it is absent, and constructing a metric never
// renders anything.
type ChartRenderer interface {
	Render(groups []string, groupedValues [][]float64) (core.Artifact, error)
}
