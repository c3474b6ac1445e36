package dto

type EvaluateInput struct {
	APIKey      string
	Prompt      string
	Venue       string
	FileName    string
	ContentType string
	FileData    []byte
}

type EvaluateOutput struct {
	Evaluation string
}

type CompareInput struct {
	APIKey      string
	Evaluation  string
	HumanReview string
}

type CompareOutput struct {
	Comparison string
}
