package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Game.Level)
	assert.Nil(t, cfg.Log.File)

	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigDecodesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[game]
level = 3
problems = 20
pass = 70.5
transition-ms = 1000
lang = "zh"
summary = false

[log]
file = "/tmp/devilcalc.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Game.Level)
	assert.Equal(t, 3, *cfg.Game.Level)
	assert.Equal(t, 20, *cfg.Game.Problems)
	assert.InDelta(t, 70.5, *cfg.Game.Pass, 1e-9)
	assert.Equal(t, 1000, *cfg.Game.TransitionMs)
	assert.Nil(t, cfg.Game.FeedbackMs)
	assert.Equal(t, "zh", *cfg.Game.Lang)
	assert.False(t, *cfg.Game.Summary)
	assert.Equal(t, "/tmp/devilcalc.log", *cfg.Log.File)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nwords = 3\n"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game.words")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "devilcalc", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "devilcalc", "devilcalc.log"), DefaultLogPath())
}
