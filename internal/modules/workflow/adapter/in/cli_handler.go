package in

import (
	"context"
	"fmt"

	"revguide/internal/modules/workflow/dto"
	workflowin "revguide/internal/modules/workflow/port/in"
)

type CLIHandler struct {
	usecase workflowin.Usecase
}

func NewCLIHandler(usecase workflowin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// EvaluateParams is one headless run through the whole wizard.
type EvaluateParams struct {
	APIKey string
	Venue  string
	Prompt string
	Path   string
}

// Evaluate drives the state machine exactly the way the TUI does: the gates
// of every step still apply, so a short key or an oversized file fails here
// with the same messages.
func (h CLIHandler) Evaluate(ctx context.Context, params EvaluateParams) (dto.SubmitOutput, error) {
	h.usecase.SetAPIKey(ctx, params.APIKey)
	if _, err := h.usecase.Next(ctx); err != nil {
		return dto.SubmitOutput{}, err
	}
	h.usecase.SetVenue(ctx, params.Venue)
	h.usecase.SetPrompt(ctx, params.Prompt)
	if _, err := h.usecase.Next(ctx); err != nil {
		return dto.SubmitOutput{}, err
	}
	if _, err := h.usecase.AttachPaper(ctx, params.Path); err != nil {
		return dto.SubmitOutput{}, err
	}
	out, err := h.usecase.Submit(ctx)
	if err != nil {
		return dto.SubmitOutput{}, err
	}
	if !out.Applied {
		return dto.SubmitOutput{}, fmt.Errorf("submission was discarded as stale")
	}
	return out, nil
}

func (h CLIHandler) Venues(ctx context.Context) []string {
	return h.usecase.Venues(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.ActivityOutput, error) {
	return h.usecase.History(ctx)
}
