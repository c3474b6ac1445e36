package domain

import (
	"fmt"
	"strings"
)

// MaxSizeBytes is the upload cap enforced locally before any network call.
const MaxSizeBytes = 10 << 20

// Declared content types the evaluation service accepts: PDF, legacy and
// modern Word documents, and plain text.
const (
	TypePDF       = "application/pdf"
	TypeDoc       = "application/msword"
	TypeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypePlainText = "text/plain"
)

var allowedTypes = map[string]struct{}{
	TypePDF:       {},
	TypeDoc:       {},
	TypeDocx:      {},
	TypePlainText: {},
}

// Paper is one user-chosen document. Data is nil when the file was not
// buffered (oversized files are rejected before their bytes are needed).
type Paper struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
	Pages       int
	Data        []byte
}

func TypeAllowed(contentType string) bool {
	_, ok := allowedTypes[contentType]
	return ok
}

// TypeForExtension maps a file extension to its declared content type, or ""
// when the extension implies nothing.
func TypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return TypePDF
	case ".doc":
		return TypeDoc
	case ".docx":
		return TypeDocx
	case ".txt", ".text":
		return TypePlainText
	}
	return ""
}

// Validate runs the local upload gates: size cap and type allow-list. The
// returned error names the exact failed gate so the user can act on it.
func (p Paper) Validate() error {
	if p.Size > MaxSizeBytes {
		return fmt.Errorf("file too large: %q is %.1f MiB, the limit is 10 MiB", p.Name, float64(p.Size)/(1<<20))
	}
	if !TypeAllowed(p.ContentType) {
		return fmt.Errorf("unsupported file type %q: use a PDF, Word document, or plain text file", p.ContentType)
	}
	return nil
}
