package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndDelete(t *testing.T) {
	l := &Local{Root: t.TempDir()}

	content := []byte("picture bytes")
	err := l.Save(context.Background(), "static/uploads/avatar.png", bytes.NewReader(content), int64(len(content)), "image/png")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(l.Root, "static", "uploads", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, l.Delete(context.Background(), "static/uploads/avatar.png"))

	_, err = os.Stat(filepath.Join(l.Root, "static", "uploads", "avatar.png"))
	assert.True(t, os.IsNotExist(err))
}
