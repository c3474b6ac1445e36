package in

import (
	"context"

	"revguide/internal/modules/paper/dto"
	paperin "revguide/internal/modules/paper/port/in"
)

type CLIHandler struct {
	usecase paperin.Usecase
}

func NewCLIHandler(usecase paperin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Inspect(ctx context.Context, path string) (dto.PaperOutput, error) {
	return h.usecase.Inspect(ctx, dto.InspectInput{Path: path})
}
