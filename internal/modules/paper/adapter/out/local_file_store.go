package out

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"revguide/internal/modules/paper/domain"
	paperout "revguide/internal/modules/paper/port/out"
)

type LocalFileStore struct{}

func NewLocalFileStore() paperout.FileStore {
	return &LocalFileStore{}
}

func (s *LocalFileStore) Load(_ context.Context, path string) (domain.Paper, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Paper{}, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return domain.Paper{}, fmt.Errorf("%q is a directory, not a file", path)
	}
	paper := domain.Paper{
		Path: path,
		Name: filepath.Base(path),
		Size: info.Size(),
	}
	// Oversized files are never buffered; the size gate rejects them before
	// their bytes could be needed.
	if info.Size() <= domain.MaxSizeBytes {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Paper{}, fmt.Errorf("read file: %w", err)
		}
		paper.Data = data
	}
	paper.ContentType = declaredType(paper)
	return paper, nil
}

// declaredType resolves the declared content type: the extension wins, and
// content sniffing is the fallback for unknown extensions.
func declaredType(paper domain.Paper) string {
	if t := domain.TypeForExtension(filepath.Ext(paper.Name)); t != "" {
		return t
	}
	if len(paper.Data) == 0 {
		return "application/octet-stream"
	}
	t := http.DetectContentType(paper.Data)
	// DetectContentType qualifies text with a charset parameter; the
	// allow-list compares bare media types.
	if t == "text/plain; charset=utf-8" {
		return domain.TypePlainText
	}
	return t
}
