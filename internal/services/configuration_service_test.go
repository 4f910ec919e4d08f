package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calchub/internal/store"
)

func newTestConfig(t *testing.T) (*ConfigurationService, string, string) {
	t.Helper()
	configDir := t.TempDir()
	workDir := t.TempDir()
	c := NewConfigurationService(viper.New())
	c.SetDirs(configDir, workDir)
	return c, configDir, workDir
}

func writeEnv(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0600))
}

func TestConfigurationService_Defaults(t *testing.T) {
	c, configDir, workDir := newTestConfig(t)
	require.NoError(t, c.Initialize())

	assert.Equal(t, "configuration", c.Name())
	assert.Equal(t, store.KindFile, c.StoreKind())
	assert.Equal(t, configDir, c.DataDir())
	assert.Equal(t, "default", c.Theme())
	assert.Equal(t, DefaultHistoryLimit, c.HistoryLimit())
	assert.False(t, c.IsTestMode())

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, ".env"), paths.ConfigEnvPath)
	assert.Equal(t, filepath.Join(workDir, ".env"), paths.LocalEnvPath)
	assert.False(t, paths.ConfigEnvLoaded)
	assert.False(t, paths.LocalEnvLoaded)
}

func TestConfigurationService_DotEnvPrecedence(t *testing.T) {
	c, configDir, workDir := newTestConfig(t)
	writeEnv(t, configDir, "CALCHUB_THEME=dark\nCALCHUB_HISTORY_LIMIT=10\nOTHER_KEY=ignored\n")
	writeEnv(t, workDir, "CALCHUB_THEME=light\n")

	require.NoError(t, c.Initialize())

	assert.Equal(t, "light", c.Theme())
	assert.Equal(t, 10, c.HistoryLimit())
	assert.Empty(t, c.Get("other-key"))

	paths, err := c.Paths()
	require.NoError(t, err)
	assert.True(t, paths.ConfigEnvLoaded)
	assert.True(t, paths.LocalEnvLoaded)
}

func TestConfigurationService_EnvironmentOverridesDotEnv(t *testing.T) {
	c, _, workDir := newTestConfig(t)
	writeEnv(t, workDir, "CALCHUB_STORE=sqlite\n")
	t.Setenv("CALCHUB_STORE", "memory")

	require.NoError(t, c.Initialize())
	assert.Equal(t, store.KindMemory, c.StoreKind())
}

func TestConfigurationService_TestModeDefaultsToMemory(t *testing.T) {
	c, _, _ := newTestConfig(t)
	t.Setenv("CALCHUB_TEST_MODE", "true")

	require.NoError(t, c.Initialize())
	assert.True(t, c.IsTestMode())
	assert.Equal(t, store.KindMemory, c.StoreKind())
}

func TestConfigurationService_SetOverrides(t *testing.T) {
	c, _, _ := newTestConfig(t)
	require.NoError(t, c.Initialize())

	c.Set(ConfigHistoryLimit, -3)
	assert.Equal(t, DefaultHistoryLimit, c.HistoryLimit())

	c.Set(ConfigStore, "SQLite")
	assert.Equal(t, store.KindSQLite, c.StoreKind())
	assert.Contains(t, c.Settings(), ConfigTheme)
}

func TestConfigurationService_PathsBeforeInitialize(t *testing.T) {
	c, _, _ := newTestConfig(t)
	_, err := c.Paths()
	assert.Error(t, err)
}

func TestConfigurationService_XDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	c := NewConfigurationService(viper.New())
	c.SetDirs("", t.TempDir())
	require.NoError(t, c.Initialize())
	assert.Equal(t, filepath.Join(home, "calchub"), c.DataDir())
}

func TestConfigurationService_MalformedDotEnv(t *testing.T) {
	c, configDir, _ := newTestConfig(t)
	require.NoError(t, os.Mkdir(filepath.Join(configDir, ".env"), 0700))

	err := c.Initialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config .env")
}
