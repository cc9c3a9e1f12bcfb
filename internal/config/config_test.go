package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.MetaDBPath)
	assert.Equal(t, 100, cfg.RowLimit)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.False(t, cfg.NoColor)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DBTALK_DB", "/tmp/target.db")
	t.Setenv("DBTALK_META_DB", "/tmp/meta.db")
	t.Setenv("DBTALK_ROW_LIMIT", "50")
	t.Setenv("DBTALK_HISTORY_LIMIT", "5")
	t.Setenv("DBTALK_NO_COLOR", "true")

	cfg := Load()

	assert.Equal(t, "/tmp/target.db", cfg.DBPath)
	assert.Equal(t, "/tmp/meta.db", cfg.MetaDBPath)
	assert.Equal(t, 50, cfg.RowLimit)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.True(t, cfg.NoColor)
}

func TestLoad_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("DBTALK_ROW_LIMIT", "not-a-number")
	t.Setenv("DBTALK_HISTORY_LIMIT", "-3")

	cfg := Load()

	assert.Equal(t, 100, cfg.RowLimit)
	assert.Equal(t, 20, cfg.HistoryLimit)
}
