package cli

import (
	"fmt"
	"os"

	"quiz-player/internal/config"
	"quiz-player/internal/domain"
	"quiz-player/internal/quizfile"

	"github.com/spf13/cobra"
)

// NewCheckCmd reports which records of a quiz bank are playable.
func NewCheckCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a quiz bank and list dropped records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path := pickFile(file, cfg)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrSourceNotFound, err)
			}
			questions, report := quizfile.Inspect(string(data))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records, %d playable, %d skipped\n", path, report.Records, len(questions), len(report.Skipped))
			for _, skipped := range report.Skipped {
				fmt.Fprintf(out, "  record %d: %s\n", skipped.Record, skipped.Reason)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "quiz bank file (defaults to quiz.file from config)")
	return cmd
}
