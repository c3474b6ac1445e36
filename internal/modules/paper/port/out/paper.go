package out

import (
	"context"

	"revguide/internal/modules/paper/domain"
)

type FileStore interface {
	Load(ctx context.Context, path string) (domain.Paper, error)
}

type PDFProber interface {
	PageCount(ctx context.Context, data []byte) (int, error)
}
