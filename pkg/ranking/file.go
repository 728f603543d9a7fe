package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the ranking as a JSON array of seconds.
type FileStore struct {
	Path string
}

// Load returns an empty list when the file does not exist yet.
func (f *FileStore) Load() ([]float64, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}

	var scores []float64
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.Path, err)
	}
	return scores, nil
}

func (f *FileStore) Save(scores []float64) error {
	if scores == nil {
		scores = []float64{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(f.Path, data, 0644)
}
