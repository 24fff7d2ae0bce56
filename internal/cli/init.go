package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/margins/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration and build the index",
		Long: `Init writes a default config.yaml to the configuration directory,
opens the vault, and performs a full index scan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			if err := ensureDefaultConfigFile(configDir); err != nil {
				return err
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			count, err := app.Index.ScanAll()
			if err != nil {
				return err
			}

			fmt.Printf("Initialized margins: config in %s, %d notes indexed\n", configDir, count)
			return nil
		},
	}
}
