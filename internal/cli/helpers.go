// Shared helpers for margins CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/margins/internal/logger"
	"github.com/mesh-intelligence/margins/internal/paths"
	"github.com/mesh-intelligence/margins/pkg/margins"
	"github.com/mesh-intelligence/margins/pkg/types"
)

// resolveAppConfig merges flags, environment, and config.yaml into the core
// Config following the directory precedence chains.
func resolveAppConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}

	vaultDir, err := paths.ResolveVaultDir(flags.vaultDir, v.GetString(cfgKeyVaultDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve vault dir: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	active := flags.active
	if active == "" {
		active = v.GetString(cfgKeyActiveNote)
	}

	return types.Config{
		VaultDir:       vaultDir,
		DataDir:        dataDir,
		PrototypesRoot: v.GetString(cfgKeyPrototypesRoot),
		ValuesRoot:     v.GetString(cfgKeyValuesRoot),
		ActiveNote:     active,
	}, nil
}

// openApp builds the composed application from the resolved config. The
// caller must Close the returned App.
func openApp() (*margins.App, error) {
	cfg, err := resolveAppConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Level: flags.logLevel, Pretty: !flags.jsonMode})
	return margins.Open(cfg, log)
}

// optionalNoteArg returns the first positional argument, or the empty
// string (the current note) when none is given.
func optionalNoteArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// printRecord writes a record as indented JSON.
func printRecord(r types.Record) error {
	return printJSON(r)
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(output))
	return nil
}

// parseRecordArg parses a JSON object argument into a Record.
func parseRecordArg(arg string) (types.Record, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(arg), &data); err != nil {
		return nil, fmt.Errorf("parse data argument: %w", err)
	}
	return types.Record(data), nil
}
