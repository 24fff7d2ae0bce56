package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/margins/pkg/types"
)

func newGetCmd() *cobra.Command {
	var (
		noFileMeta    bool
		noFrontmatter bool
		noInline      bool
		noCache       bool
	)

	cmd := &cobra.Command{
		Use:   "get [note]",
		Short: "Print the merged metadata view of a note",
		Long: `Get merges the enabled sources for the note into a single record.
Without a note argument the configured current note is used.

Example:
  margins get projects/roadmap
  margins get projects/roadmap --no-inline --no-cache`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sources := types.Sources{
				FileMeta:    !noFileMeta,
				Frontmatter: !noFrontmatter,
				Inline:      !noInline,
				Cache:       !noCache,
			}
			record, err := app.Service.Get(optionalNoteArg(args), sources)
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}

	cmd.Flags().BoolVar(&noFileMeta, "no-filemeta", false, "exclude the reserved file subrecord")
	cmd.Flags().BoolVar(&noFrontmatter, "no-frontmatter", false, "exclude frontmatter fields")
	cmd.Flags().BoolVar(&noInline, "no-inline", false, "exclude inline computed fields")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "exclude the side cache")
	return cmd
}
