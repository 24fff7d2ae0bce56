package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg: Config{
				VaultDir:       "/tmp/vault",
				PrototypesRoot: DefaultPrototypesRoot,
				ValuesRoot:     DefaultValuesRoot,
			},
		},
		{
			name:    "empty vault dir rejected",
			cfg:     Config{PrototypesRoot: "p", ValuesRoot: "v"},
			wantErr: ErrVaultDirEmpty,
		},
		{
			name:    "empty prototypes root rejected",
			cfg:     Config{VaultDir: "/tmp/vault", ValuesRoot: "v"},
			wantErr: ErrPrototypesRootEmpty,
		},
		{
			name:    "empty values root rejected",
			cfg:     Config{VaultDir: "/tmp/vault", PrototypesRoot: "p"},
			wantErr: ErrValuesRootEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("fills empty roots", func(t *testing.T) {
		cfg := Config{VaultDir: "/tmp/vault"}.WithDefaults()
		assert.Equal(t, DefaultPrototypesRoot, cfg.PrototypesRoot)
		assert.Equal(t, DefaultValuesRoot, cfg.ValuesRoot)
	})

	t.Run("keeps configured roots", func(t *testing.T) {
		cfg := Config{
			VaultDir:       "/tmp/vault",
			PrototypesRoot: "proto",
			ValuesRoot:     "vals",
		}.WithDefaults()
		assert.Equal(t, "proto", cfg.PrototypesRoot)
		assert.Equal(t, "vals", cfg.ValuesRoot)
	})
}
