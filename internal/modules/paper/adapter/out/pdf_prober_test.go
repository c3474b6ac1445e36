package out_test

import (
	"context"
	"testing"

	"revguide/internal/modules/paper/adapter/out"
)

func TestPageCountMalformedDataFailsSafely(t *testing.T) {
	t.Parallel()
	prober := out.NewLocalPDFProber()

	for _, data := range [][]byte{
		nil,
		[]byte("not a pdf at all"),
		[]byte("%PDF-1.7 truncated"),
	} {
		pages, err := prober.PageCount(context.Background(), data)
		if err == nil {
			t.Fatalf("malformed input %q should fail", data)
		}
		if pages != 0 {
			t.Fatalf("pages = %d for malformed input", pages)
		}
	}
}
