package out_test

import (
	"context"
	"testing"
	"time"

	"revguide/internal/modules/workflow/adapter/out"
	"revguide/internal/modules/workflow/domain"
)

func TestRecordAndListOrdered(t *testing.T) {
	t.Parallel()
	store, err := out.NewSQLiteActivityStore("")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []domain.Activity{
		{ID: "b", At: base.Add(2 * time.Second), Kind: "submit_succeeded", Detail: "paper.pdf"},
		{ID: "a", At: base, Kind: "paper_attached", Detail: "paper.pdf"},
		{ID: "c", At: base.Add(time.Second), Kind: "submit_started", Detail: "paper.pdf"},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("record %s: %v", entry.ID, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("listed %d entries, want 3", len(got))
	}
	wantOrder := []string{"a", "c", "b"}
	for n, entry := range got {
		if entry.ID != wantOrder[n] {
			t.Fatalf("position %d = %q, want %q", n, entry.ID, wantOrder[n])
		}
	}
	if !got[0].At.Equal(base) || got[0].Kind != "paper_attached" || got[0].Detail != "paper.pdf" {
		t.Fatalf("roundtripped entry: %+v", got[0])
	}
}

func TestDuplicateIDIsRefused(t *testing.T) {
	t.Parallel()
	store, err := out.NewSQLiteActivityStore("")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	entry := domain.Activity{ID: "dup", At: time.Now().UTC(), Kind: "restarted"}
	if err := store.Record(ctx, entry); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if err := store.Record(ctx, entry); err == nil {
		t.Fatal("duplicate id should fail the primary key")
	}
}

func TestEmptyListIsEmpty(t *testing.T) {
	t.Parallel()
	store, err := out.NewSQLiteActivityStore("")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store listed %d entries", len(got))
	}
}
