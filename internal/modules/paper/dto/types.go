package dto

type InspectInput struct {
	Path string
}

type PaperOutput struct {
	Path         string
	Name         string
	Size         int64
	ContentType  string
	Pages        int
	Data         []byte
	Accepted     bool
	RejectReason string
}
