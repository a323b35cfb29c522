package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citelib/zotero-mcp/internal/config"
)

func setupTestConfigStore(t *testing.T) *mockConfigStore {
	t.Helper()

	// Keep the environment out of the resolved settings.
	t.Setenv(config.EnvLibraryID, "")
	t.Setenv(config.EnvLibraryType, "")
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvLocal, "")

	old := configStore
	store := newMockConfigStore()
	configStore = store
	t.Cleanup(func() {
		configStore = old
	})
	return store
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigSetCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "zotero.library_id"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestConfigShowCmd_MasksAPIKey(t *testing.T) {
	store := setupTestConfigStore(t)
	store.values[config.KeyLibraryID] = "12345"
	store.values[config.KeyAPIKey] = "P9NiFoyLeZu2bZNvvuQPDWsd"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Library ID: 12345")
	assert.Contains(t, buf.String(), "P9Ni...DWsd")
	assert.NotContains(t, buf.String(), "P9NiFoyLeZu2bZNvvuQPDWsd")
}

func TestConfigShowCmd_LocalMode(t *testing.T) {
	store := setupTestConfigStore(t)
	store.values[config.KeyLibraryID] = "12345"
	store.values[config.KeyLocal] = true

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Mode: local")
	assert.NotContains(t, buf.String(), "API key")
}

func TestConfigSetCmd_StoresAndSaves(t *testing.T) {
	store := setupTestConfigStore(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "zotero.library_id", "67890"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "67890", store.values["zotero.library_id"])
	assert.Equal(t, 1, store.saves)
	assert.Contains(t, buf.String(), "Set zotero.library_id")
}

func TestConfigSetCmd_ParsesLocalAsBool(t *testing.T) {
	store := setupTestConfigStore(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "zotero.local", "true"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, true, store.values["zotero.local"])
}

func TestConfigSetCmd_RejectsBadBool(t *testing.T) {
	setupTestConfigStore(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "zotero.local", "maybe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expects true or false")
}

func TestConfigCmd_StoreNotConfigured(t *testing.T) {
	old := configStore
	configStore = nil
	defer func() {
		configStore = old
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config store not configured")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "P9Ni...DWsd", maskAPIKey("P9NiFoyLeZu2bZNvvuQPDWsd"))
}
