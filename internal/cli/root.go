package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ytget/gardening-directions/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Data    string // sample content file; empty means the embedded content
	Format  string // "text" | "yaml"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// Launcher starts the desktop UI with the given sample content file.
type Launcher func(dataFile string) error

// NewRootCommand creates the root command. launch backs the run command.
func NewRootCommand(launch Launcher) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gardening-directions",
		Short: "Gardening Directions sample content browser",
		Long: `Browse the Gardening Directions groups and items.

Groups are listed with their preview of up to twelve items. Use "run" to
open the desktop app.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "", "sample content YAML file (default: built-in content)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGroupCommand(opts))
	cmd.AddCommand(NewItemCommand(opts))
	cmd.AddCommand(NewRunCommand(opts, launch))

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(launch Launcher) int {
	cmd := NewRootCommand(launch)
	if err := cmd.Execute(); err != nil {
		return GetExitCode(err)
	}
	return ExitSuccess
}

// loadSource opens the content selected by --data. Image loading is left out;
// the CLI only prints image paths.
func loadSource(opts *RootOptions) (*registry.Source, error) {
	if opts.Data == "" {
		slog.Debug("using built-in content")
		return registry.LoadEmbedded(nil)
	}
	if _, err := os.Stat(opts.Data); err != nil {
		return nil, WrapExitError(ExitCommandError, "sample data not found", err)
	}
	source, err := registry.LoadFile(opts.Data, nil)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid sample data", err)
	}
	slog.Debug("loaded sample data", "file", opts.Data, "groups", source.AllGroups().Len())
	return source, nil
}
