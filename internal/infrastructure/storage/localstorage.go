// Package storage persists attachment payloads on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/resolvia-inc/resolvia/internal/shared/id"
)

// LocalFileStorage writes attachment blobs under a base directory, one
// subdirectory per ticket. Stored paths are relative to the base so the
// directory can be relocated without rewriting records.
type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) *LocalFileStorage {
	return &LocalFileStorage{basePath: basePath}
}

func (s *LocalFileStorage) Store(ctx context.Context, ticketID uint, fileName string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.basePath, fmt.Sprintf("tickets/%d", ticketID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}

	// Prefix with a random short id so colliding upload names never
	// overwrite each other.
	unique, err := id.Generate(10)
	if err != nil {
		return "", fmt.Errorf("failed to generate file id: %w", err)
	}
	storedName := unique + "_" + sanitizeFileName(fileName)

	relPath := filepath.ToSlash(filepath.Join(fmt.Sprintf("tickets/%d", ticketID), storedName))
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(relPath))

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write attachment payload: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to flush attachment payload: %w", err)
	}

	return relPath, nil
}

func (s *LocalFileStorage) Remove(ctx context.Context, storagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	clean := filepath.Clean(filepath.FromSlash(storagePath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid storage path: %s", storagePath)
	}

	fullPath := filepath.Join(s.basePath, clean)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}

	return nil
}

// sanitizeFileName strips path separators and control characters from an
// upload name, keeping the extension intact.
func sanitizeFileName(name string) string {
	name = filepath.Base(filepath.FromSlash(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == ':':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out == "" || out == "." || out == ".." {
		return "attachment"
	}
	return out
}
