package domain

import "time"

// Step identifies one stage of the evaluation wizard.
type Step int

const (
	StepCredentials Step = iota
	StepOptions
	StepUpload
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepCredentials:
		return "credentials"
	case StepOptions:
		return "options"
	case StepUpload:
		return "upload"
	case StepResult:
		return "result"
	}
	return "unknown"
}

// SubmissionPhase is the tag of the submission state variant. Exactly one
// phase is active at a time.
type SubmissionPhase int

const (
	PhaseIdle SubmissionPhase = iota
	PhaseInFlight
	PhaseSucceeded
	PhaseFailed
)

func (p SubmissionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInFlight:
		return "in_flight"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// SubmissionState is Idle | InFlight | Succeeded(Result) | Failed(Reason).
type SubmissionState struct {
	Phase  SubmissionPhase
	Result string
	Reason string
}

// Paper is the session's view of the selected file. Accepted/RejectReason
// carry the local gate verdict computed when the file was attached, so the
// upload gate has a single source of truth.
type Paper struct {
	Path         string
	Name         string
	Size         int64
	ContentType  string
	Pages        int
	Data         []byte
	Accepted     bool
	RejectReason string
}

type Options struct {
	Prompt string
	Venue  string
}

// Session is the whole in-memory state of one run through the wizard.
// Nothing in it outlives the process. Generation is the token stamped on
// each submission so a completion that resolves after the session moved on
// can be recognized as stale and discarded.
type Session struct {
	Step       Step
	APIKey     string
	Options    Options
	Paper      *Paper
	Submission SubmissionState
	Generation int
}

// ComparisonSession is derived from a succeeded evaluation; it mirrors the
// submission state shape for its own single-shot request.
type ComparisonSession struct {
	APIKey      string
	Evaluation  string
	HumanReview string
	State       SubmissionState
	Generation  int
}

// Activity is one row of the per-run activity projection.
type Activity struct {
	ID     string
	At     time.Time
	Kind   string
	Detail string
}
