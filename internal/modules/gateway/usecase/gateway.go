package usecase

import (
	"context"

	"revguide/internal/modules/gateway/domain"
	"revguide/internal/modules/gateway/dto"
	gatewayin "revguide/internal/modules/gateway/port/in"
	"revguide/internal/modules/gateway/service"
)

type Interactor struct {
	svc *service.GatewayService
}

func NewInteractor(svc *service.GatewayService) gatewayin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	evaluation, err := i.svc.Evaluate(ctx, domain.EvaluationRequest{
		APIKey:      input.APIKey,
		Prompt:      input.Prompt,
		Venue:       input.Venue,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		FileData:    input.FileData,
	})
	if err != nil {
		return dto.EvaluateOutput{}, err
	}
	return dto.EvaluateOutput{Evaluation: evaluation}, nil
}

func (i *Interactor) Compare(ctx context.Context, input dto.CompareInput) (dto.CompareOutput, error) {
	comparison, err := i.svc.Compare(ctx, domain.ComparisonRequest{
		APIKey:      input.APIKey,
		Evaluation:  input.Evaluation,
		HumanReview: input.HumanReview,
	})
	if err != nil {
		return dto.CompareOutput{}, err
	}
	return dto.CompareOutput{Comparison: comparison}, nil
}
