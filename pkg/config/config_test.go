package config_test

import (
	"runtime"
	"testing"

	"github.com/dexdata/dexdb/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "dexdb", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 50_000, cfg.Database.BatchSize)

	assert.Equal(t, "pokedex.sqlite", cfg.Populate.SnapshotPath)
	assert.Empty(t, cfg.Populate.Tables)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
}
