package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileKV persists each key as a JSON file in a directory. Writes go
// through a temp file and a rename so a crash mid-write never leaves a
// truncated collection behind.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a FileKV
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

// Get implements KV
func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set implements KV
func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// Delete implements KV
func (f *FileKV) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Close implements KV
func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
