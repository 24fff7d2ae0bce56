package types

import "errors"

// Default namespace roots. Prototype and value records live under these
// vault paths unless configured otherwise.
const (
	DefaultPrototypesRoot = "_/_assets/_data/_prototypes"
	DefaultValuesRoot     = "_/_assets/_data/_values"
)

// Config holds the settings the metadata core consumes.
type Config struct {
	VaultDir       string `json:"vault_dir" yaml:"vault_dir" mapstructure:"vault_dir"`
	DataDir        string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	PrototypesRoot string `json:"prototypes_root" yaml:"prototypes_root" mapstructure:"prototypes_root"`
	ValuesRoot     string `json:"values_root" yaml:"values_root" mapstructure:"values_root"`
	ActiveNote     string `json:"active_note" yaml:"active_note" mapstructure:"active_note"`
}

// Config validation errors.
var (
	ErrVaultDirEmpty       = errors.New("vault_dir must not be empty")
	ErrPrototypesRootEmpty = errors.New("prototypes_root must not be empty")
	ErrValuesRootEmpty     = errors.New("values_root must not be empty")
)

// WithDefaults returns a copy of the config with empty namespace roots
// replaced by the defaults.
func (c Config) WithDefaults() Config {
	if c.PrototypesRoot == "" {
		c.PrototypesRoot = DefaultPrototypesRoot
	}
	if c.ValuesRoot == "" {
		c.ValuesRoot = DefaultValuesRoot
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.VaultDir == "" {
		return ErrVaultDirEmpty
	}
	if c.PrototypesRoot == "" {
		return ErrPrototypesRootEmpty
	}
	if c.ValuesRoot == "" {
		return ErrValuesRootEmpty
	}
	return nil
}
