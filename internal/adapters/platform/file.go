package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/vpnc/internal/domain"
	"github.com/bnema/vpnc/internal/ports"
)

// FileSource reads the credential from a file the host drops on disk. The
// file may appear after start-up, so a missing file reads as empty.
type FileSource struct {
	path string
}

var _ ports.SessionSource = (*FileSource)(nil)

func NewFileSource(path string) *FileSource {
	if strings.TrimSpace(path) == "" {
		return &FileSource{}
	}
	return &FileSource{path: filepath.Clean(path)}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) InitData(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.path == "" {
		return "", domain.ErrPlatformUnavailable
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read init data file %q: %w", s.path, err)
	}

	return strings.TrimSpace(string(data)), nil
}
