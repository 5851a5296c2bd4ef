package model

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source provides raw artifact bytes by name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads artifacts from a local directory.
type DirSource struct {
	Dir string
}

func NewDirSource(dir string) *DirSource { return &DirSource{Dir: dir} }

func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("artifact name %q must not contain a path", name)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
		}
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	return data, nil
}
