package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"website_updater/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet_config.json")
	data := `{
  "general_csv_url": "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=0",
  "hero_csv_url": "https://docs.google.com/spreadsheets/d/abc/export?format=csv&gid=1",
  "unknown_key": "ignored"
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	sources, err := config.Load(path)
	require.NoError(t, err)
	assert.Contains(t, sources.GeneralCSVURL, "gid=0")
	assert.Contains(t, sources.HeroCSVURL, "gid=1")
	assert.Empty(t, sources.ContactCSVURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadUnparsableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet_config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json {"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestWriteStarter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet_config.json")

	require.NoError(t, config.WriteStarter(path))

	sources, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, sources.GeneralCSVURL)

	// A second init must not clobber the operator's URLs.
	assert.Error(t, config.WriteStarter(path))
}
