package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute builds the ccl command tree and runs it under ctx. It is the
// entry point called by cmd/ccl.
//
// Logging:
//   - Default: info level (stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the command context and retrieved by commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ccl",
		Short:        "ccl labels connected components in binary images",
		Long:         `ccl thresholds an image into foreground/background pixels and labels every connected blob of foreground with a distinct integer, printing the resulting label grid.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLabelCmd())

	return root.ExecuteContext(ctx)
}
