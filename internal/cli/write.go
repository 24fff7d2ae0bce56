package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/margins/pkg/meta"
)

// redirectFlags are shared by the write commands.
type redirectFlags struct {
	values        bool
	prototype     bool
	valuesPath    string
	prototypePath string
}

func (rf *redirectFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&rf.values, "values", false, "redirect the operation into the values namespace")
	cmd.Flags().BoolVar(&rf.prototype, "prototype", false, "redirect the operation into the prototypes namespace")
	cmd.Flags().StringVar(&rf.valuesPath, "values-path", "", "values namespace sub-path (implies --values)")
	cmd.Flags().StringVar(&rf.prototypePath, "prototype-path", "", "prototypes namespace sub-path (implies --prototype)")
}

func (rf *redirectFlags) options() []meta.WriteOption {
	var opts []meta.WriteOption
	switch {
	case rf.valuesPath != "":
		opts = append(opts, meta.ToValuesAt(rf.valuesPath))
	case rf.values:
		opts = append(opts, meta.ToValues())
	}
	switch {
	case rf.prototypePath != "":
		opts = append(opts, meta.ToPrototypeAt(rf.prototypePath))
	case rf.prototype:
		opts = append(opts, meta.ToPrototype())
	}
	return opts
}

func newPatchCmd() *cobra.Command {
	var rf redirectFlags
	var property string

	cmd := &cobra.Command{
		Use:   "patch <note> <json>",
		Short: "Write fields of a JSON object to a note's frontmatter",
		Long: `Patch writes every top-level key of the JSON object as a frontmatter
field of the note and prints the refreshed metadata view. With --property
the whole object is stored under that single field instead. A "-" note
argument targets the configured current note.

Example:
  margins patch projects/roadmap '{"status": "done"}'
  margins patch task '{"effort": 3}' --values`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseRecordArg(args[1])
			if err != nil {
				return err
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			opts := rf.options()
			if property != "" {
				opts = append(opts, meta.AsProperty(property))
			}
			record, err := app.Service.Patch(noteArg(args[0]), data, opts...)
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVar(&property, "property", "", "store the whole object under this single field")
	return cmd
}

func newSetCmd() *cobra.Command {
	var rf redirectFlags

	cmd := &cobra.Command{
		Use:   "set <note> <json>",
		Short: "Replace a note's frontmatter with a JSON object",
		Long: `Set removes every existing frontmatter field of the note, writes every
top-level key of the JSON object, and prints the refreshed metadata view.
A "-" note argument targets the configured current note.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseRecordArg(args[1])
			if err != nil {
				return err
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			record, err := app.Service.Set(noteArg(args[0]), data, rf.options()...)
			if err != nil {
				return err
			}
			return printRecord(record)
		},
	}

	rf.register(cmd)
	return cmd
}

func newClearCmd() *cobra.Command {
	var rf redirectFlags

	cmd := &cobra.Command{
		Use:   "clear [note] [field...]",
		Short: "Remove frontmatter fields from a note",
		Long: `Clear removes the named frontmatter fields from the note. Without
field arguments every current frontmatter field is removed. A "-" note
argument targets the configured current note.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			var names []string
			if len(args) > 1 {
				names = args[1:]
			}
			return app.Service.Clear(noteArg(args[0]), names, rf.options()...)
		},
	}

	rf.register(cmd)
	return cmd
}

// noteArg maps the "-" placeholder to the current note.
func noteArg(arg string) string {
	if arg == "-" {
		return ""
	}
	return arg
}
