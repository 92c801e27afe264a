package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewItemCommand creates the item command.
func NewItemCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItem(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runItem(opts *RootOptions, id string, w io.Writer) error {
	source, err := loadSource(opts)
	if err != nil {
		return err
	}

	it, ok := source.Item(id)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("item %q not found", id))
	}

	v := newItemView(it)
	formatter := &OutputFormatter{Format: opts.Format, Writer: w}
	return formatter.Write(v, v.writeText)
}
