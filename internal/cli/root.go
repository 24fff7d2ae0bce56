// Package cli implements the margins command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/margins/pkg/margins"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	vaultDir  string
	dataDir   string
	active    string
	logLevel  string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "margins" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "margins",
		Short: "Margins reads and writes note metadata across sources",
		Long: `Margins merges the metadata attached to vault notes - frontmatter,
inline fields, file metadata, and a per-note side cache - into a single
view, and writes frontmatter fields back through the same interface.`,
		Version: margins.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.vaultDir, "vault", "", "vault directory (default: config vault_dir or CWD)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "index data directory (default: $(CWD)/.margins-db)")
	root.PersistentFlags().StringVar(&flags.active, "active", "", "note treated as the current note")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newFrontmatterCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newClearCmd())
	root.AddCommand(newPrototypesCmd())
	root.AddCommand(newValuesCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newJournalCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
