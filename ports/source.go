package ports

import (
	"context"

	"roikit/domain/sample"
)

// MicrodataSource is the only contract required of any upstream loader:
// produce an ordered table the engine can group by key column(s) into
// (key, value-list) pairs. Survey microdata, joined wage records and Excel
// uploads all arrive through this.
type MicrodataSource interface {
	LoadTable(ctx context.Context) (sample.Table, error)
}
