package service

import (
	"context"

	"revguide/internal/modules/paper/domain"
	paperout "revguide/internal/modules/paper/port/out"
)

type PaperService struct {
	store  paperout.FileStore
	prober paperout.PDFProber
}

func NewPaperService(store paperout.FileStore, prober paperout.PDFProber) *PaperService {
	return &PaperService{store: store, prober: prober}
}

// Inspect loads a paper and runs the local gates against it. The gate verdict
// comes back as a reject reason ("" means accepted) rather than an error: an
// oversized or wrong-typed file is still a loaded paper, just not a
// submittable one.
func (s *PaperService) Inspect(ctx context.Context, path string) (domain.Paper, string, error) {
	paper, err := s.store.Load(ctx, path)
	if err != nil {
		return domain.Paper{}, "", err
	}
	reason := ""
	if gateErr := paper.Validate(); gateErr != nil {
		reason = gateErr.Error()
	}
	if reason == "" && paper.ContentType == domain.TypePDF && s.prober != nil {
		// Page count is display metadata only; an unreadable PDF is still
		// accepted as long as its declared type and size pass the gates.
		if pages, probeErr := s.prober.PageCount(ctx, paper.Data); probeErr == nil {
			paper.Pages = pages
		}
	}
	return paper, reason, nil
}
