package cli

import (
	"github.com/spf13/cobra"
)

func newPrototypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prototypes <sub-path>",
		Short: "Print the frontmatter of a prototype record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Service.Prototypes(args[0])
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <sub-path>",
		Short: "Print the frontmatter of a values record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Service.Values(args[0])
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}
}
