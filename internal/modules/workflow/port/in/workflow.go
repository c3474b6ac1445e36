package in

import (
	"context"

	"revguide/internal/modules/workflow/dto"
)

type Usecase interface {
	Session(ctx context.Context) dto.SessionView
	Venues(ctx context.Context) []string

	SetAPIKey(ctx context.Context, key string) dto.SessionView
	SetPrompt(ctx context.Context, prompt string) dto.SessionView
	SetVenue(ctx context.Context, venue string) dto.SessionView
	AttachPaper(ctx context.Context, path string) (dto.SessionView, error)

	Next(ctx context.Context) (dto.SessionView, error)
	Back(ctx context.Context) (dto.SessionView, error)
	Restart(ctx context.Context) (dto.SessionView, error)
	Submit(ctx context.Context) (dto.SubmitOutput, error)

	StartComparison(ctx context.Context) (dto.ComparisonView, error)
	SetHumanReview(ctx context.Context, text string) (dto.ComparisonView, error)
	Compare(ctx context.Context) (dto.CompareOutput, error)

	History(ctx context.Context) ([]dto.ActivityOutput, error)
}
