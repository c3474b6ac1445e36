package in

import (
	"context"

	"revguide/internal/modules/gateway/dto"
)

type Usecase interface {
	Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error)
	Compare(ctx context.Context, input dto.CompareInput) (dto.CompareOutput, error)
}
