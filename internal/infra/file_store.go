package infra

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/memoboard/internal/ports"
)

type FileRecordStore struct {
	dir string
}

func NewFileRecordStore(dir string) ports.RecordStore {
	return &FileRecordStore{dir: dir}
}

func (s *FileRecordStore) Put(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record %s: %w", key, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, key), data, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}

	return nil
}

// Get reads the whole record back. A missing file and an unparsable one are
// the same case: the caller keeps its fallback.
func (s *FileRecordStore) Get(key string, out any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return false
	}

	return json.Unmarshal(data, out) == nil
}
