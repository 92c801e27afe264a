package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups with their item previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd.OutOrStdout())
		},
	}
}

func runList(opts *RootOptions, w io.Writer) error {
	source, err := loadSource(opts)
	if err != nil {
		return err
	}

	groups := source.AllGroups().Items()
	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, newGroupView(g, false))
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: w}
	return formatter.Write(views, func(w io.Writer) {
		for i, v := range views {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s  %s  (%d items)\n", v.ID, v.Title, v.ItemCount)
			writeRefs(w, v.TopItems)
		}
	})
}
