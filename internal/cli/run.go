package cli

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command, which opens the desktop app.
func NewRunCommand(rootOpts *RootOptions, launch Launcher) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if launch == nil {
				return NewExitError(ExitCommandError, "desktop app is not available in this build")
			}
			if rootOpts.Data != "" {
				if _, err := loadSource(rootOpts); err != nil {
					return err
				}
			}
			if err := launch(rootOpts.Data); err != nil {
				return WrapExitError(ExitFailure, "desktop app failed", err)
			}
			return nil
		},
	}
}
