package corpus

import (
	"context"
	"fmt"
	"os"

	"passwordStrengthBackend/internal/core/domain"
)

type FileSource struct {
	Path   string
	Hashed bool
}

func NewFileSource(path string, hashed bool) *FileSource {
	return &FileSource{Path: path, Hashed: hashed}
}

func (s *FileSource) Name() domain.CorpusSource {
	return domain.CorpusFile
}

func (s *FileSource) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	return readDigests(f, s.Hashed)
}
