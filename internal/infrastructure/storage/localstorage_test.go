package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStorage_StoreAndRemove(t *testing.T) {
	base := t.TempDir()
	s := NewLocalFileStorage(base)

	path, err := s.Store(context.Background(), 7, "report.pdf", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "tickets/7/"))
	assert.True(t, strings.HasSuffix(path, "_report.pdf"))

	data, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, s.Remove(context.Background(), path))
	_, err = os.Stat(filepath.Join(base, filepath.FromSlash(path)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalFileStorage_StoreSanitizesName(t *testing.T) {
	base := t.TempDir()
	s := NewLocalFileStorage(base)

	path, err := s.Store(context.Background(), 1, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "tickets/1/"))
	assert.False(t, strings.Contains(path, ".."))
}

func TestLocalFileStorage_StoreUniqueNames(t *testing.T) {
	base := t.TempDir()
	s := NewLocalFileStorage(base)

	first, err := s.Store(context.Background(), 1, "log.txt", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := s.Store(context.Background(), 1, "log.txt", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalFileStorage_RemoveRejectsEscapingPaths(t *testing.T) {
	s := NewLocalFileStorage(t.TempDir())

	assert.Error(t, s.Remove(context.Background(), "../outside.txt"))
	assert.Error(t, s.Remove(context.Background(), "/etc/passwd"))
}

func TestLocalFileStorage_RemoveMissingFileIsNoop(t *testing.T) {
	s := NewLocalFileStorage(t.TempDir())

	assert.NoError(t, s.Remove(context.Background(), "tickets/1/gone.txt"))
}
