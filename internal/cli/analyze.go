package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/task-analyzer-api/internal/service"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file     string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a task batch and print it sorted by priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadTaskFile(file)
			if err != nil {
				return err
			}

			// A --strategy flag wins over the strategy named in the file.
			name := batch.Strategy
			if strategy != "" {
				name = strategy
			}

			analyzer := service.NewAnalyzer(slog.Default())
			return printJSON(analyzer.Analyze(batch.domainTasks(), name, batch.Weights))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "task batch file (JSON or YAML)")
	cmd.Flags().
		StringVarP(&strategy, "strategy", "s", "", "scoring strategy (smart_balance, fastest_wins, high_impact, deadline_driven)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSuggestCmd() *cobra.Command {
	var (
		file     string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print the top 3 suggested tasks with reasoning",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadTaskFile(file)
			if err != nil {
				return err
			}

			name := batch.Strategy
			if strategy != "" {
				name = strategy
			}

			analyzer := service.NewAnalyzer(slog.Default())
			return printJSON(analyzer.Suggest(batch.domainTasks(), name, batch.Weights))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "task batch file (JSON or YAML)")
	cmd.Flags().
		StringVarP(&strategy, "strategy", "s", "", "scoring strategy (smart_balance, fastest_wins, high_impact, deadline_driven)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a task batch for circular dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := loadTaskFile(file)
			if err != nil {
				return err
			}

			analyzer := service.NewAnalyzer(slog.Default())
			return printJSON(analyzer.Validate(batch.domainTasks()))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "task batch file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
