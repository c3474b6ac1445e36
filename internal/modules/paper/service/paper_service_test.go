package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"revguide/internal/modules/paper/domain"
	"revguide/internal/modules/paper/service"
)

type fakeStore struct {
	paper domain.Paper
	err   error
}

func (s fakeStore) Load(context.Context, string) (domain.Paper, error) {
	return s.paper, s.err
}

type fakeProber struct {
	pages int
	err   error
	calls int
}

func (p *fakeProber) PageCount(context.Context, []byte) (int, error) {
	p.calls++
	return p.pages, p.err
}

func TestInspectAcceptedPDFGetsPageCount(t *testing.T) {
	t.Parallel()
	prober := &fakeProber{pages: 9}
	svc := service.NewPaperService(fakeStore{paper: domain.Paper{
		Name: "a.pdf", Size: 100, ContentType: domain.TypePDF, Data: []byte("pdf"),
	}}, prober)

	paper, reason, err := svc.Inspect(context.Background(), "/p/a.pdf")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if reason != "" {
		t.Fatalf("reject reason = %q", reason)
	}
	if paper.Pages != 9 {
		t.Fatalf("pages = %d, want 9", paper.Pages)
	}
}

func TestInspectProbeFailureIsIgnored(t *testing.T) {
	t.Parallel()
	prober := &fakeProber{err: errors.New("corrupt xref")}
	svc := service.NewPaperService(fakeStore{paper: domain.Paper{
		Name: "a.pdf", Size: 100, ContentType: domain.TypePDF, Data: []byte("pdf"),
	}}, prober)

	paper, reason, err := svc.Inspect(context.Background(), "/p/a.pdf")
	if err != nil || reason != "" {
		t.Fatalf("inspect: reason=%q err=%v", reason, err)
	}
	if paper.Pages != 0 {
		t.Fatalf("pages = %d, want 0 on probe failure", paper.Pages)
	}
}

func TestInspectRejectedFileSkipsProbe(t *testing.T) {
	t.Parallel()
	prober := &fakeProber{pages: 9}
	svc := service.NewPaperService(fakeStore{paper: domain.Paper{
		Name: "big.pdf", Size: domain.MaxSizeBytes + 1, ContentType: domain.TypePDF,
	}}, prober)

	_, reason, err := svc.Inspect(context.Background(), "/p/big.pdf")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(reason, "file too large") {
		t.Fatalf("reject reason = %q", reason)
	}
	if prober.calls != 0 {
		t.Fatal("rejected files must not be probed")
	}
}

func TestInspectNonPDFSkipsProbe(t *testing.T) {
	t.Parallel()
	prober := &fakeProber{pages: 9}
	svc := service.NewPaperService(fakeStore{paper: domain.Paper{
		Name: "notes.txt", Size: 10, ContentType: domain.TypePlainText, Data: []byte("hi"),
	}}, prober)

	paper, reason, err := svc.Inspect(context.Background(), "/p/notes.txt")
	if err != nil || reason != "" {
		t.Fatalf("inspect: reason=%q err=%v", reason, err)
	}
	if prober.calls != 0 || paper.Pages != 0 {
		t.Fatalf("text file probed: calls=%d pages=%d", prober.calls, paper.Pages)
	}
}

func TestInspectLoadErrorPropagates(t *testing.T) {
	t.Parallel()
	svc := service.NewPaperService(fakeStore{err: errors.New("stat file: no such file")}, &fakeProber{})
	if _, _, err := svc.Inspect(context.Background(), "/missing"); err == nil {
		t.Fatal("load error should propagate")
	}
}
