package service

import (
	"errors"
	"fmt"

	"revguide/internal/modules/workflow/domain"
	apperrors "revguide/internal/platform/errors"
)

// WorkflowService is the pure state machine behind the wizard: step
// transitions, per-step gates, and the submission lifecycle with its
// generation tokens. It holds no mutable state of its own; every method
// takes a Session value and returns the next one.
type WorkflowService struct {
	steps  []domain.StepSpec
	venues []string
}

func NewWorkflowService(venues []string) *WorkflowService {
	return &WorkflowService{steps: domain.Steps(venues), venues: venues}
}

func (s *WorkflowService) NewSession() domain.Session {
	return domain.Session{Step: domain.StepCredentials}
}

func (s *WorkflowService) Venues() []string {
	return append([]string(nil), s.venues...)
}

func (s *WorkflowService) Specs() []domain.StepSpec {
	return s.steps
}

func (s *WorkflowService) spec(step domain.Step) (domain.StepSpec, error) {
	for _, spec := range s.steps {
		if spec.ID == step {
			return spec, nil
		}
	}
	return domain.StepSpec{}, fmt.Errorf("unknown step %v", step)
}

// Advance moves to the next step if the current step is manually advanceable
// and its gate passes.
func (s *WorkflowService) Advance(sess domain.Session) (domain.Session, error) {
	spec, err := s.spec(sess.Step)
	if err != nil {
		return sess, err
	}
	if !spec.Manual {
		if sess.Step == domain.StepUpload {
			return sess, errors.New("submit the paper to continue")
		}
		return sess, errors.New("this is the final step")
	}
	if err := spec.Validate(sess); err != nil {
		return sess, err
	}
	sess.Step++
	return sess, nil
}

// Back returns to the immediately preceding step. Field values are kept; the
// step descriptors operate on the same Session so nothing is lost. Backing
// out is refused while a submission is in flight.
func (s *WorkflowService) Back(sess domain.Session) (domain.Session, error) {
	if sess.Submission.Phase == domain.PhaseInFlight {
		return sess, apperrors.ErrSubmissionInFlight
	}
	if sess.Step == domain.StepCredentials {
		return sess, errors.New("already at the first step")
	}
	sess.Step--
	return sess, nil
}

// Restart prepares the session for a different paper: the selected file and
// submission state are cleared, credentials and options are kept, and the
// generation is bumped so any stray completion from the finished run is
// recognized as stale.
func (s *WorkflowService) Restart(sess domain.Session) (domain.Session, error) {
	if sess.Step != domain.StepResult {
		return sess, errors.New("restart is only available from the result step")
	}
	sess.Paper = nil
	sess.Submission = domain.SubmissionState{}
	sess.Step = domain.StepUpload
	sess.Generation++
	return sess, nil
}

// BeginSubmission runs the upload gates and, if they pass, marks the session
// in flight under a fresh generation token. At most one submission may be in
// flight; a second attempt is refused, never queued.
func (s *WorkflowService) BeginSubmission(sess domain.Session) (domain.Session, int, error) {
	if sess.Submission.Phase == domain.PhaseInFlight {
		return sess, 0, apperrors.ErrSubmissionInFlight
	}
	if sess.Step != domain.StepUpload {
		return sess, 0, apperrors.ErrNotAtUploadStep
	}
	spec, err := s.spec(sess.Step)
	if err != nil {
		return sess, 0, err
	}
	if err := spec.Validate(sess); err != nil {
		return sess, 0, err
	}
	sess.Generation++
	sess.Submission = domain.SubmissionState{Phase: domain.PhaseInFlight}
	return sess, sess.Generation, nil
}

// CompleteSubmission applies a terminal outcome for the submission started
// under generation. A completion whose generation no longer matches, or that
// arrives when nothing is in flight, is stale: the session is returned
// unchanged and applied is false. Success advances to the result step;
// failure leaves the step where it is so the user can resubmit.
func (s *WorkflowService) CompleteSubmission(sess domain.Session, generation int, result, reason string) (domain.Session, bool) {
	if sess.Submission.Phase != domain.PhaseInFlight || sess.Generation != generation {
		return sess, false
	}
	if reason != "" {
		sess.Submission = domain.SubmissionState{Phase: domain.PhaseFailed, Reason: reason}
		return sess, true
	}
	sess.Submission = domain.SubmissionState{Phase: domain.PhaseSucceeded, Result: result}
	sess.Step = domain.StepResult
	return sess, true
}

// BeginComparison derives a comparison session from a succeeded evaluation.
func (s *WorkflowService) BeginComparison(sess domain.Session) (domain.ComparisonSession, error) {
	if sess.Step != domain.StepResult || sess.Submission.Phase != domain.PhaseSucceeded {
		return domain.ComparisonSession{}, apperrors.ErrNoEvaluation
	}
	return domain.ComparisonSession{
		APIKey:     sess.APIKey,
		Evaluation: sess.Submission.Result,
	}, nil
}

// StartCompare marks the comparison in flight under a fresh generation.
func (s *WorkflowService) StartCompare(comp domain.ComparisonSession) (domain.ComparisonSession, int, error) {
	if comp.State.Phase == domain.PhaseInFlight {
		return comp, 0, apperrors.ErrComparisonInFlight
	}
	if comp.HumanReview == "" {
		return comp, 0, errors.New("paste the human review text first")
	}
	comp.Generation++
	comp.State = domain.SubmissionState{Phase: domain.PhaseInFlight}
	return comp, comp.Generation, nil
}

// CompleteCompare mirrors CompleteSubmission for the comparison sub-flow.
func (s *WorkflowService) CompleteCompare(comp domain.ComparisonSession, generation int, result, reason string) (domain.ComparisonSession, bool) {
	if comp.State.Phase != domain.PhaseInFlight || comp.Generation != generation {
		return comp, false
	}
	if reason != "" {
		comp.State = domain.SubmissionState{Phase: domain.PhaseFailed, Reason: reason}
		return comp, true
	}
	comp.State = domain.SubmissionState{Phase: domain.PhaseSucceeded, Result: result}
	return comp, true
}
