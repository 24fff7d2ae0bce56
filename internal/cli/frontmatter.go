package cli

import (
	"github.com/spf13/cobra"
)

func newFrontmatterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frontmatter [note]",
		Short: "Print only the note's frontmatter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Service.Frontmatter(optionalNoteArg(args))
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
}

func newCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache [note]",
		Short: "Print the note's side-cache entry",
		Long: `Cache prints the process-lifetime side-cache entry for the note.
The cache lives only as long as one margins process, so from the CLI this
is mostly useful to confirm a fresh entry is empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Service.Cache(optionalNoteArg(args))
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
}
