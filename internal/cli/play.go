package cli

import (
	"fmt"
	"math/rand"
	"time"

	"quiz-player/internal/app"
	"quiz-player/internal/config"
	"quiz-player/internal/present"
	"quiz-player/internal/quizfile"
	"quiz-player/internal/transport/terminal"

	"github.com/spf13/cobra"
)

// NewPlayCmd plays a quiz bank on the terminal.
func NewPlayCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz bank in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			path := pickFile(file, cfg)

			questions, err := quizfile.Load(path)
			if err != nil {
				return err
			}
			questions = app.PrepareQuestions(questions, app.PlayerOptions{
				Shuffle: cfg.Player.Shuffle,
				Limit:   cfg.Player.Limit,
			}, rand.New(rand.NewSource(time.Now().UnixNano())))
			if len(questions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No quizzes found in the file.")
				return nil
			}

			session, err := app.NewSession(questions)
			if err != nil {
				return err
			}

			var cues present.CueSink = present.Nop{}
			if cfg.Player.Bell {
				cues = present.Bell{W: cmd.OutOrStdout()}
			}
			player := terminal.NewPlayer(cmd.InOrStdin(), cmd.OutOrStdout(), cues, cfg.Player.PassPercent)
			_, err = player.Run(cmd.Context(), session)
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "quiz bank file (defaults to quiz.file from config)")
	return cmd
}

func pickFile(flag string, cfg config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Quiz.File
}
