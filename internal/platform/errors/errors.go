package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNoPaperSelected    = errors.New("select a file to upload")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrComparisonInFlight = errors.New("a comparison is already in flight")
	ErrNoEvaluation       = errors.New("no completed evaluation to compare against")
	ErrNotAtUploadStep    = errors.New("submission is only possible from the upload step")
)

// RemoteError is a non-success response from the evaluation service. Message
// holds the structured error detail from the response body when the service
// provided one; the fallback text is used otherwise.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("evaluation service returned status %d", e.Status)
}
