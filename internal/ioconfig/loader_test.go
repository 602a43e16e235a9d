package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dexdata/dexdb/internal/ioconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	res, err := ioconfig.Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", res.Config.Database.Host)
	assert.Equal(t, 5432, res.Config.Database.Port)
	assert.Equal(t, "dexdb", res.Config.Database.Database)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dexdb.yaml")
	content := []byte(`
database:
  host: db.example.org
  port: 15432
populate:
  snapshot_path: /data/pokedex.sqlite
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)
	assert.Equal(t, "db.example.org", res.Config.Database.Host)
	assert.Equal(t, 15432, res.Config.Database.Port)
	assert.Equal(t, "/data/pokedex.sqlite", res.Config.Populate.SnapshotPath)
	assert.Equal(t, "debug", res.Config.Log.Level)

	// Values missing from the file keep their defaults.
	assert.Equal(t, "postgres", res.Config.Database.User)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := ioconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DEXDB_DATABASE_HOST", "env.example.org")

	res, err := ioconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.example.org", res.Config.Database.Host)
}
