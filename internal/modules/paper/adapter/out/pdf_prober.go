package out

import (
	"bytes"
	"context"
	"fmt"

	paperout "revguide/internal/modules/paper/port/out"
	"rsc.io/pdf"
)

type LocalPDFProber struct{}

func NewLocalPDFProber() paperout.PDFProber {
	return &LocalPDFProber{}
}

func (p *LocalPDFProber) PageCount(_ context.Context, data []byte) (count int, err error) {
	// rsc.io/pdf panics on some malformed documents; a probe failure must
	// never take the app down.
	defer func() {
		if r := recover(); r != nil {
			count = 0
			err = fmt.Errorf("probe pdf: %v", r)
		}
	}()
	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return doc.NumPage(), nil
}
