package out

import (
	"context"

	"revguide/internal/modules/gateway/domain"
)

type EvaluationEndpoint interface {
	Evaluate(ctx context.Context, req domain.EvaluationRequest) (string, error)
}

type ComparisonEndpoint interface {
	Compare(ctx context.Context, req domain.ComparisonRequest) (string, error)
}
