package domain

import (
	"errors"
	"fmt"

	apperrors "revguide/internal/platform/errors"
)

// MinAPIKeyLength is an opaque format check only; the real key validation
// happens server-side on first use.
const MinAPIKeyLength = 30

// StepSpec describes one wizard step as data: its identity, display title,
// and the gate that must pass before the machine may move past it. Manual
// steps advance on user request once the gate passes; the upload step only
// advances as a side effect of a succeeded submission.
type StepSpec struct {
	ID       Step
	Title    string
	Manual   bool
	Validate func(Session) error
}

// Steps builds the ordered step list for a venue catalog. The whole wizard
// is driven off this slice; there are no per-step code paths.
func Steps(venues []string) []StepSpec {
	return []StepSpec{
		{ID: StepCredentials, Title: "API Key", Manual: true, Validate: validateCredentials},
		{ID: StepOptions, Title: "Options", Manual: true, Validate: validateOptions(venues)},
		{ID: StepUpload, Title: "Upload", Manual: false, Validate: validateUpload},
		{ID: StepResult, Title: "Result", Manual: false, Validate: func(Session) error { return nil }},
	}
}

func validateCredentials(sess Session) error {
	if sess.APIKey == "" {
		return errors.New("enter your Gemini API key")
	}
	if len(sess.APIKey) < MinAPIKeyLength {
		return fmt.Errorf("API key looks too short: expected at least %d characters", MinAPIKeyLength)
	}
	return nil
}

func validateOptions(venues []string) func(Session) error {
	return func(sess Session) error {
		if sess.Options.Venue == "" {
			return errors.New("select a target venue")
		}
		for _, v := range venues {
			if v == sess.Options.Venue {
				return nil
			}
		}
		return fmt.Errorf("unknown venue %q", sess.Options.Venue)
	}
}

func validateUpload(sess Session) error {
	if sess.Paper == nil {
		return apperrors.ErrNoPaperSelected
	}
	if !sess.Paper.Accepted {
		return errors.New(sess.Paper.RejectReason)
	}
	return nil
}
