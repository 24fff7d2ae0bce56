// Package paths resolves configuration, data, and vault directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultDataDirName = ".margins-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MARGINS_CONFIG_DIR"
	EnvDataDir   = "MARGINS_DATA_DIR"
	EnvVaultDir  = "MARGINS_VAULT"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/margins (fallback ~/.config/margins)
// macOS:   ~/Library/Application Support/margins
// Windows: %APPDATA%/margins
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "margins"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "margins"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "margins"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > MARGINS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the index data directory following the precedence
// chain: flag > config.yaml data_dir > MARGINS_DATA_DIR env > CWD-relative
// default ($(CWD)/.margins-db).
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveVaultDir returns the vault directory following the precedence
// chain: flag > config.yaml vault_dir > MARGINS_VAULT env > CWD.
func ResolveVaultDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvVaultDir); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}
