// Package cli implements the taskcli command tree. Each subcommand
// loads a task batch from a JSON or YAML file, runs the same analysis
// pipeline the HTTP API uses, and prints the result as indented JSON.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd builds the taskcli command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskcli",
		Short: "Score and validate task batches offline",
		Long: "taskcli reads a task batch from a JSON or YAML file and ranks it by " +
			"priority or checks it for circular dependencies, without a running server.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newValidateCmd())

	return root
}
