package in

import (
	"context"

	"revguide/internal/modules/gateway/dto"
	gatewayin "revguide/internal/modules/gateway/port/in"
)

// CLIHandler exposes the comparison operation for headless runs, where no
// wizard session exists and the evaluation text is supplied directly.
type CLIHandler struct {
	usecase gatewayin.Usecase
}

func NewCLIHandler(usecase gatewayin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Compare(ctx context.Context, apiKey, evaluation, humanReview string) (dto.CompareOutput, error) {
	return h.usecase.Compare(ctx, dto.CompareInput{
		APIKey:      apiKey,
		Evaluation:  evaluation,
		HumanReview: humanReview,
	})
}
