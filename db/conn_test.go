package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesInstanceDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "instance")
	viper.Set("database.driver", "sqlite")
	viper.Set("app.instance_dir", dir)

	database, err := New()
	require.NoError(t, err)
	require.NotNil(t, database)

	_, err = os.Stat(filepath.Join(dir, "dating.db"))
	assert.NoError(t, err)
}

func TestNewRefusesUnusableInstanceDir(t *testing.T) {
	// A file where the directory should go makes MkdirAll fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	viper.Set("database.driver", "sqlite")
	viper.Set("app.instance_dir", filepath.Join(blocker, "instance"))

	_, err := New()
	assert.Error(t, err)
}
