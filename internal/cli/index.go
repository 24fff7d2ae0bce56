package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Reindex every note in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			count, err := app.Index.ScanAll()
			if err != nil {
				return err
			}
			fmt.Printf("%d notes indexed\n", count)
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the vault and keep the index fresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.Index.ScanAll(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Index.Watch(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}

func newJournalCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recent field writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ops, err := app.Index.RecentOps(limit)
			if err != nil {
				return err
			}
			if flags.jsonMode {
				return printJSON(ops)
			}
			for _, op := range ops {
				fmt.Printf("%s  %-6s  %s.%s\n", op.At.Format("2006-01-02 15:04:05"), op.Kind, op.NoteID, op.Property)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of ops to list")
	return cmd
}
