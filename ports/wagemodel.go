package ports

import (
	"context"

	"roikit/domain/premium"
)

// WageModel supplies the pre-computed Mincer coefficient vector. Fitting
// the regression is out of scope; the coefficients are consumed as given.
type WageModel interface {
	Coefficients(ctx context.Context) (premium.MincerParams, error)
}

// StaticWageModel serves a fixed coefficient vector, e.g. one shipped with
// the deployment or supplied per request.
type StaticWageModel struct {
	Params premium.MincerParams
}

func (m StaticWageModel) Coefficients(context.Context) (premium.MincerParams, error) {
	return m.Params, nil
}
