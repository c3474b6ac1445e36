package domain

// EvaluationRequest is a snapshot of everything one evaluation upload needs.
// It is copied out of the session before the request leaves, so later edits
// to the session cannot alter an in-flight submission.
type EvaluationRequest struct {
	APIKey      string
	Prompt      string
	Venue       string
	FileName    string
	ContentType string
	FileData    []byte
}

// ComparisonRequest carries a finished evaluation and a human-written review
// to the comparison endpoint.
type ComparisonRequest struct {
	APIKey      string
	Evaluation  string
	HumanReview string
}
