package dto

import "time"

type PaperView struct {
	Name         string
	Size         int64
	ContentType  string
	Pages        int
	Accepted     bool
	RejectReason string
}

// SessionView is the read model handed to adapters and views. Phase is the
// submission phase tag: "idle", "in_flight", "succeeded", or "failed".
type SessionView struct {
	Step       string
	StepIndex  int
	StepTitles []string
	APIKey     string
	Prompt     string
	Venue      string
	Paper      *PaperView
	Phase      string
	Result     string
	Reason     string
}

// SubmitOutput is the terminal outcome of one submission. Applied is false
// when the completion was stale and discarded.
type SubmitOutput struct {
	Applied bool
	Phase   string
	Result  string
	Reason  string
}

type ComparisonView struct {
	Evaluation  string
	HumanReview string
	Phase       string
	Result      string
	Reason      string
}

type CompareOutput struct {
	Applied    bool
	Phase      string
	Comparison string
	Reason     string
}

type ActivityOutput struct {
	ID     string
	At     time.Time
	Kind   string
	Detail string
}
