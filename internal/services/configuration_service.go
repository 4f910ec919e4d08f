package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"calchub/internal/store"
)

// Configuration keys. Flags, CALCHUB_* environment variables and .env entries share them.
const (
	ConfigStore        = "store"
	ConfigDataDir      = "data-dir"
	ConfigTheme        = "theme"
	ConfigHistoryLimit = "history-limit"
	ConfigTestMode     = "test-mode"
)

// EnvPrefix prefixes configuration environment variables: CALCHUB_HISTORY_LIMIT.
const EnvPrefix = "CALCHUB"

// DefaultHistoryLimit caps the history when nothing else is configured.
const DefaultHistoryLimit = 50

// ConfigPaths reports which configuration files were found.
type ConfigPaths struct {
	ConfigDir       string
	ConfigEnvPath   string
	ConfigEnvLoaded bool
	LocalEnvPath    string
	LocalEnvLoaded  bool
}

// ConfigurationService resolves settings from, lowest to highest priority:
// defaults, the user config .env, the working directory .env, CALCHUB_* environment
// variables and command-line flags bound to the same viper instance.
type ConfigurationService struct {
	initialized bool
	v           *viper.Viper
	configDir   string
	workDir     string
	paths       ConfigPaths
}

// NewConfigurationService creates a configuration service on v, or on the global viper when v is nil.
func NewConfigurationService(v *viper.Viper) *ConfigurationService {
	if v == nil {
		v = viper.GetViper()
	}
	return &ConfigurationService{v: v}
}

// Name returns the service name "configuration" for registration.
func (c *ConfigurationService) Name() string {
	return "configuration"
}

// SetDirs overrides the user config directory and the working directory. Empty keeps the default.
func (c *ConfigurationService) SetDirs(configDir, workDir string) {
	c.configDir = configDir
	c.workDir = workDir
}

// Initialize loads every configuration layer.
func (c *ConfigurationService) Initialize() error {
	if c.initialized {
		return nil
	}

	configDir, err := c.userConfigDir()
	if err != nil {
		return err
	}
	workDir := c.workDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetDefault(ConfigStore, string(store.KindFile))
	c.v.SetDefault(ConfigDataDir, configDir)
	c.v.SetDefault(ConfigTheme, "default")
	c.v.SetDefault(ConfigHistoryLimit, DefaultHistoryLimit)
	c.v.SetDefault(ConfigTestMode, false)

	c.paths = ConfigPaths{
		ConfigDir:     configDir,
		ConfigEnvPath: filepath.Join(configDir, ".env"),
		LocalEnvPath:  filepath.Join(workDir, ".env"),
	}

	settings := make(map[string]interface{})
	if c.paths.ConfigEnvLoaded, err = loadDotEnv(c.paths.ConfigEnvPath, settings); err != nil {
		return fmt.Errorf("failed to load config .env: %w", err)
	}
	if c.paths.LocalEnvLoaded, err = loadDotEnv(c.paths.LocalEnvPath, settings); err != nil {
		return fmt.Errorf("failed to load local .env: %w", err)
	}
	if err := c.v.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("failed to merge .env settings: %w", err)
	}

	// Test mode keeps state in memory unless a store was chosen explicitly.
	if c.IsTestMode() {
		c.v.SetDefault(ConfigStore, string(store.KindMemory))
	}

	c.initialized = true
	return nil
}

// loadDotEnv reads CALCHUB_* entries of a .env file into settings, keyed by config key.
// A missing file is not an error.
func loadDotEnv(path string, settings map[string]interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return false, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}
	for key, value := range envMap {
		if !strings.HasPrefix(key, EnvPrefix+"_") {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix+"_"))
		settings[strings.ReplaceAll(name, "_", "-")] = value
	}
	return true, nil
}

// userConfigDir returns $XDG_CONFIG_HOME/calchub or ~/.config/calchub.
func (c *ConfigurationService) userConfigDir() (string, error) {
	if c.configDir != "" {
		return c.configDir, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "calchub"), nil
}

// Get returns a setting as a string.
func (c *ConfigurationService) Get(key string) string {
	return c.v.GetString(key)
}

// Set overrides a setting for the rest of the session.
func (c *ConfigurationService) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// IsTestMode reports whether deterministic test mode is on.
func (c *ConfigurationService) IsTestMode() bool {
	return c.v.GetBool(ConfigTestMode)
}

// StoreKind returns the configured store implementation.
func (c *ConfigurationService) StoreKind() store.Kind {
	return store.Kind(strings.ToLower(c.v.GetString(ConfigStore)))
}

// DataDir returns the directory holding persisted state.
func (c *ConfigurationService) DataDir() string {
	return c.v.GetString(ConfigDataDir)
}

// Theme returns the configured theme name.
func (c *ConfigurationService) Theme() string {
	return c.v.GetString(ConfigTheme)
}

// HistoryLimit returns the maximum number of history entries, DefaultHistoryLimit when unset or invalid.
func (c *ConfigurationService) HistoryLimit() int {
	if n := c.v.GetInt(ConfigHistoryLimit); n > 0 {
		return n
	}
	return DefaultHistoryLimit
}

// Paths returns the configuration files that were looked up.
func (c *ConfigurationService) Paths() (ConfigPaths, error) {
	if !c.initialized {
		return ConfigPaths{}, fmt.Errorf("configuration service not initialized")
	}
	return c.paths, nil
}

// Settings returns every resolved setting.
func (c *ConfigurationService) Settings() map[string]interface{} {
	return c.v.AllSettings()
}
