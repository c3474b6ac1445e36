package usecase

import (
	"context"

	"revguide/internal/modules/paper/dto"
	paperin "revguide/internal/modules/paper/port/in"
	"revguide/internal/modules/paper/service"
)

type Interactor struct {
	svc *service.PaperService
}

func NewInteractor(svc *service.PaperService) paperin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Inspect(ctx context.Context, input dto.InspectInput) (dto.PaperOutput, error) {
	paper, reason, err := i.svc.Inspect(ctx, input.Path)
	if err != nil {
		return dto.PaperOutput{}, err
	}
	return dto.PaperOutput{
		Path:         paper.Path,
		Name:         paper.Name,
		Size:         paper.Size,
		ContentType:  paper.ContentType,
		Pages:        paper.Pages,
		Data:         paper.Data,
		Accepted:     reason == "",
		RejectReason: reason,
	}, nil
}
