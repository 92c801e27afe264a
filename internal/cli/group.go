package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewGroupCommand creates the group command.
func NewGroupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "group <id>",
		Short: "Show a group and all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runGroup(opts *RootOptions, id string, w io.Writer) error {
	source, err := loadSource(opts)
	if err != nil {
		return err
	}

	g, ok := source.Group(id)
	if !ok {
		return NewExitError(ExitFailure, fmt.Sprintf("group %q not found", id))
	}

	v := newGroupView(g, true)
	formatter := &OutputFormatter{Format: opts.Format, Writer: w}
	return formatter.Write(v, v.writeText)
}
