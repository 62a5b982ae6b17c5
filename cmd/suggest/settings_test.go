package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileIsZeroValue(t *testing.T) {
	s := loadSettings(filepath.Join(t.TempDir(), "missing.tsv"))
	assert.Equal(t, settings{}, s)
}

func TestSaveSettingsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	want := settings{limit: 5, left: "<", right: ">"}
	require.NoError(t, saveSettings(path, want))

	got := loadSettings(path)
	assert.Equal(t, want, got)
}

func TestSettingsPathAppendsSuffix(t *testing.T) {
	assert.Equal(t, "data.tsv.settings.json", settingsPath("data.tsv"))
}
