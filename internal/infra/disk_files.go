package infra

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/Vovarama1992/memoboard/internal/ports"
)

type DiskFileSaver struct {
	dir string
}

func NewDiskFileSaver(dir string) (ports.FileSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskFileSaver{dir: dir}, nil
}

// Save writes src under <ms-timestamp>-<random><ext>. Collisions are
// improbable, not impossible; an accepted risk.
func (s *DiskFileSaver) Save(src io.Reader, originalName string, contentType string) (*ports.StoredFile, error) {
	name := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.IntN(1_000_000_000),
		filepath.Ext(originalName),
	)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(path) // no partial files survive a rejected upload
		return nil, fmt.Errorf("store upload: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("close upload file: %w", err)
	}

	return &ports.StoredFile{
		Name:        name,
		ContentType: contentType,
		Size:        n,
	}, nil
}
