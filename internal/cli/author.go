package cli

import (
	"fmt"

	"quiz-player/internal/config"
	"quiz-player/internal/quizfile"
	"quiz-player/internal/transport/terminal"

	"github.com/spf13/cobra"
)

// NewAuthorCmd collects questions interactively and appends them to a quiz bank.
func NewAuthorCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "author",
		Short: "Write new questions into a quiz bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path := pickFile(file, cfg)

			questions, runErr := terminal.NewAuthor(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
			// keep whatever was completed before input failed
			if err := quizfile.Append(path, questions...); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Quiz saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "quiz bank file (defaults to quiz.file from config)")
	return cmd
}
