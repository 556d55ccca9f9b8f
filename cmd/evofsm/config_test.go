package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	// A missing file is not an error.
	cfg, err = loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rates:
  delete_state: 0.1
  modify_state_start: 0.02
max_states: 8
allow_empty_final: false
alphabet:
  input: "abc"
  blank: "_"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, cfg.Rates.DeleteState)
	assert.Equal(t, 0.02, cfg.Rates.ModifyStateStart)
	assert.Equal(t, 8, cfg.MaxStates)
	assert.False(t, cfg.AllowEmptyFinal)
	assert.Equal(t, "abc", cfg.Alphabet.Input)
	assert.Equal(t, "_", cfg.Alphabet.Blank)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates: ["), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}
