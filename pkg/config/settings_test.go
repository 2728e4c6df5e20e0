package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempShipDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetShipDir(dir)
	t.Cleanup(func() { SetShipDir("") })
	return dir
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	useTempShipDir(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveThenLoadSettings(t *testing.T) {
	useTempShipDir(t)

	want := Settings{Backend: BackendBadger, StateKey: "alt-key", NerdFonts: NerdFontsOff, Debug: true}
	require.NoError(t, SaveSettings(want))

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsPartialFileFillsDefaults(t *testing.T) {
	dir := useTempShipDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("backend: memory\n"), 0644))

	got, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, got.Backend)
	assert.Equal(t, DefaultStateKey, got.StateKey)
	assert.Equal(t, NerdFontsAuto, got.NerdFonts)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown backend", content: "backend: sqlite\n"},
		{name: "key with slash", content: "state_key: a/b\n"},
		{name: "bad nerd fonts mode", content: "nerd_fonts: sometimes\n"},
		{name: "not yaml", content: "backend: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := useTempShipDir(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(tt.content), 0644))

			got, err := LoadSettings()
			assert.Error(t, err)
			assert.Equal(t, DefaultSettings(), got)
		})
	}
}

func TestGetShipDirPrecedence(t *testing.T) {
	t.Setenv(EnvHome, "/from/env")

	dir, err := GetShipDir()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", dir)

	SetShipDir("/from/flag")
	t.Cleanup(func() { SetShipDir("") })

	dir, err = GetShipDir()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", dir)
}
