package kassa

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "kassa.db", cfg.DbPath)
	assert.Equal(t, "kassa.log", cfg.LogPath)
}

func TestLoadConfigFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "kassa.yaml")
	err := os.WriteFile(path, []byte("db_path: /tmp/books.db\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/books.db", cfg.DbPath)
	assert.Equal(t, "kassa.log", cfg.LogPath)
}

func TestLoadConfigEnvWins(t *testing.T) {

	path := filepath.Join(t.TempDir(), "kassa.yaml")
	err := os.WriteFile(path, []byte("db_path: /tmp/books.db\n"), 0644)
	require.NoError(t, err)

	t.Setenv("KASSA_DB", "/tmp/env.db")
	t.Setenv("KASSA_LOG", "/tmp/env.log")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.DbPath)
	assert.Equal(t, "/tmp/env.log", cfg.LogPath)
}
