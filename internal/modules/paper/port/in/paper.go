package in

import (
	"context"

	"revguide/internal/modules/paper/dto"
)

type Usecase interface {
	Inspect(ctx context.Context, input dto.InspectInput) (dto.PaperOutput, error)
}
