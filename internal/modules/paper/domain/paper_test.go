package domain_test

import (
	"strings"
	"testing"

	"revguide/internal/modules/paper/domain"
)

func TestValidateSizeCap(t *testing.T) {
	t.Parallel()
	atCap := domain.Paper{Name: "ok.pdf", Size: domain.MaxSizeBytes, ContentType: domain.TypePDF}
	if err := atCap.Validate(); err != nil {
		t.Fatalf("file at the cap rejected: %v", err)
	}
	over := domain.Paper{Name: "big.pdf", Size: domain.MaxSizeBytes + 1, ContentType: domain.TypePDF}
	err := over.Validate()
	if err == nil || !strings.Contains(err.Error(), "file too large") {
		t.Fatalf("oversized file error = %v", err)
	}
	if !strings.Contains(err.Error(), `"big.pdf"`) {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestValidateTypeAllowList(t *testing.T) {
	t.Parallel()
	for _, ct := range []string{domain.TypePDF, domain.TypeDoc, domain.TypeDocx, domain.TypePlainText} {
		p := domain.Paper{Name: "f", Size: 1, ContentType: ct}
		if err := p.Validate(); err != nil {
			t.Fatalf("allowed type %q rejected: %v", ct, err)
		}
	}
	p := domain.Paper{Name: "img.png", Size: 1, ContentType: "image/png"}
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "unsupported file type") {
		t.Fatalf("disallowed type error = %v", err)
	}
}

func TestTypeForExtension(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		".pdf":  domain.TypePDF,
		".PDF":  domain.TypePDF,
		".doc":  domain.TypeDoc,
		".docx": domain.TypeDocx,
		".txt":  domain.TypePlainText,
		".text": domain.TypePlainText,
		".png":  "",
		"":      "",
	}
	for ext, want := range cases {
		if got := domain.TypeForExtension(ext); got != want {
			t.Fatalf("TypeForExtension(%q) = %q, want %q", ext, got, want)
		}
	}
}
