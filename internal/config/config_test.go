package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	filePath := writeConfig(t, "minic.cue", `
dump: tokens: true
log: {
	level: "debug"
	file:  "minic.log"
}
`)

	cfg, err := Load(filePath)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.True(cfg.Dump.Tokens)
	assert.True(cfg.Dump.AST)
	assert.Equal("debug", cfg.Log.Level)
	assert.Equal("minic.log", cfg.Log.File)
	assert.False(cfg.Log.Journal)
}

func TestLoadLaterFileWins(t *testing.T) {
	first := writeConfig(t, "first.cue", `dump: ast: false`)
	second := writeConfig(t, "second.cue", `dump: ast: true
log: journal: true`)

	cfg, err := Load(first, second)
	require.NoError(t, err)

	assert.True(t, cfg.Dump.AST)
	assert.True(t, cfg.Log.Journal)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"unknown-field.cue", `verbose: true`},
		{"bad-level.cue", `log: level: "loud"`},
		{"bad-type.cue", `dump: tokens: "yes"`},
		{"syntax.cue", `dump: {`},
	}

	for _, tc := range testCases {
		_, err := Load(writeConfig(t, tc.name, tc.content))
		assert.Error(t, err, tc.name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.cue"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
