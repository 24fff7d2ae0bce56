// Config loading for the margins CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/margins/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyVaultDir       = "vault_dir"
	cfgKeyDataDir        = "data_dir"
	cfgKeyPrototypesRoot = "prototypes_root"
	cfgKeyValuesRoot     = "values_root"
	cfgKeyActiveNote     = "active_note"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Margins CLI configuration

# Vault directory (optional; overridable by --vault flag)
# vault_dir:

# Index data directory (optional; overridable by --data-dir flag)
# data_dir:

# Namespace roots for prototype and value records
prototypes_root: _/_assets/_data/_prototypes
values_root: _/_assets/_data/_values

# Note treated as the current note (optional; overridable by --active flag)
# active_note:
`

// loadConfig reads config.yaml from the given directory using Viper.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyPrototypesRoot, types.DefaultPrototypesRoot)
	v.SetDefault(cfgKeyValuesRoot, types.DefaultValuesRoot)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates the config directory and a default
// config.yaml if either does not exist.
func ensureDefaultConfigFile(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
