package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local writes objects to disk below Root. An empty Root means the
// working directory, matching the relative paths kept in user records.
type Local struct {
	Root string
}

func (l *Local) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	p := filepath.Join(l.Root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory, %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create file, %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("failed to write file, %w", err)
	}

	return f.Close()
}

func (l *Local) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.Root, filepath.FromSlash(key)))
}
