package out

import (
	"context"

	"revguide/internal/modules/workflow/domain"
)

// ActivityProjector records the run's step transitions and submission
// outcomes for the trace surface. Projection failures never gate the
// workflow itself.
type ActivityProjector interface {
	Record(ctx context.Context, entry domain.Activity) error
	List(ctx context.Context) ([]domain.Activity, error)
}
